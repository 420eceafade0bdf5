package services

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"github.com/burcum/burcum-api/internal/horoscope/models"
	"github.com/burcum/burcum-api/internal/zodiac"
)

// Generator produces a reading for a sign and period. periodKey pins
// the timeframe (a date, a week start, a month start or a year), so
// repeated calls within one period yield the same reading. The
// interface is the seam for an external text model; TemplateGenerator
// is the built-in implementation.
type Generator interface {
	Generate(ctx context.Context, sign zodiac.Sign, period models.Period, periodKey string) (*models.Reading, error)
}

// TemplateGenerator assembles readings from the sign profiles. Output
// is deterministic per (sign, period, periodKey), so a reading never
// changes within its period even if the cache drops it.
type TemplateGenerator struct{}

func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

var periodOpenings = map[models.Period]string{
	models.Daily:   "%s burcu için bugün %s elementinin enerjisi öne çıkıyor.",
	models.Weekly:  "%s burcu için bu hafta %s elementinin etkisi altında hareketli geçecek.",
	models.Monthly: "%s burcu için bu ay %s elementi yeni kapılar aralıyor.",
	models.Yearly:  "%s burcu için bu yıl %s elementinin dönüştürücü gücü hissedilecek.",
}

var adviceOptions = []string{
	"İçgüdülerinize güvenin, sizi doğru yöne götürecekler.",
	"Acele kararlar yerine sabırlı adımlar atın.",
	"Sevdiklerinize zaman ayırmayı ihmal etmeyin.",
	"Yeni bir başlangıç için bugünden daha iyi bir gün olamaz.",
	"Enerjinizi sizi yoran ortamlardan uzak tutun.",
	"Küçük bir mola büyük bir fark yaratabilir.",
}

var loveSentences = []string{
	"Aşk hayatınızda %s gezegeninin desteğini arkanızda hissedeceksiniz.",
	"İlişkilerde açık iletişim bu dönemin anahtarı olacak.",
	"Kalbinizi dinlemeniz gereken bir dönemdesiniz.",
}

var careerSentences = []string{
	"Kariyer alanında %s yanınız fark yaratacak.",
	"İş hayatında beklenmedik bir fırsat kapınızı çalabilir.",
	"Emeklerinizin karşılığını almaya başlayacağınız bir dönem.",
}

var healthSentences = []string{
	"Enerjinizi dengede tutmak için %s gününü kendinize ayırın.",
	"Bedeninizin size verdiği sinyalleri dikkate alın.",
	"Ruhsal dengeniz fiziksel sağlığınızı da destekleyecek.",
}

func seedFor(sign zodiac.Sign, period models.Period, periodKey string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(string(sign)))
	h.Write([]byte{':'})
	h.Write([]byte(string(period)))
	h.Write([]byte{':'})
	h.Write([]byte(periodKey))
	return h.Sum64()
}

func scoreFrom(seed uint64, slot uint) int {
	return 1 + int((seed>>(slot*7))%10)
}

func pick(options []string, seed uint64, slot uint) string {
	return options[(seed>>(slot*5))%uint64(len(options))]
}

// Generate builds a Turkish reading from the sign's profile.
func (g *TemplateGenerator) Generate(_ context.Context, sign zodiac.Sign, period models.Period, periodKey string) (*models.Reading, error) {
	profile, err := zodiac.Lookup(sign)
	if err != nil {
		return nil, err
	}

	seed := seedFor(sign, period, periodKey)
	trait := profile.Traits[seed%uint64(len(profile.Traits))]

	var b strings.Builder
	fmt.Fprintf(&b, periodOpenings[period], profile.TurkishName, profile.Element)
	b.WriteString(" ")
	fmt.Fprintf(&b, "Yönetici gezegeniniz %s size cesaret veriyor; %s doğanız çevrenizdekiler tarafından fark edilecek. ", profile.Ruler, trait)

	love := pick(loveSentences, seed, 1)
	if strings.Contains(love, "%s") {
		love = fmt.Sprintf(love, profile.Ruler)
	}
	b.WriteString(love)
	b.WriteString(" ")

	career := pick(careerSentences, seed, 2)
	if strings.Contains(career, "%s") {
		career = fmt.Sprintf(career, trait)
	}
	b.WriteString(career)
	b.WriteString(" ")

	health := pick(healthSentences, seed, 3)
	if strings.Contains(health, "%s") {
		health = fmt.Sprintf(health, profile.LuckyDay)
	}
	b.WriteString(health)
	b.WriteString(" ")

	fmt.Fprintf(&b, "Şanslı gününüz %s, şanslı renginiz %s. Umudunuzu hep taze tutun.", profile.LuckyDay, profile.Color)

	return &models.Reading{
		ID:           fmt.Sprintf("%s-%s-%s", sign, period, periodKey),
		ZodiacSign:   string(sign),
		ReadingType:  period,
		ReadingDate:  periodKey,
		Content:      b.String(),
		LoveScore:    scoreFrom(seed, 1),
		CareerScore:  scoreFrom(seed, 2),
		HealthScore:  scoreFrom(seed, 3),
		LuckyNumbers: profile.LuckyNumbers,
		LuckyColor:   profile.Color,
		Advice:       pick(adviceOptions, seed, 4),
		CreatedAt:    time.Now(),
	}, nil
}
