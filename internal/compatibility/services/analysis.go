package services

import (
	"fmt"

	"github.com/burcum/burcum-api/internal/compatibility/models"
	"github.com/burcum/burcum-api/internal/zodiac"
)

// Sub-scores at or above this add a bonus strength phrase.
const bonusStrengthThreshold = 80

// template is one narrative case: a fixed phrase set plus a text
// builder over the pair's profiles. Presentation data, not logic.
type template struct {
	text       func(a, b zodiac.Profile) string
	strengths  []string
	challenges []string
	advice     string
}

var (
	mirrorTemplate = template{
		text: func(a, b zodiac.Profile) string {
			return fmt.Sprintf(
				"İki %s bir araya geldiğinde, birbirini mükemmel anlayan bir ikili oluşur. Aynı özellikleri paylaştığınız için güçlü bir bağ kurabilirsiniz.",
				a.TurkishName)
		},
		strengths:  []string{"Mükemmel anlayış", "Ortak değerler", "Benzer iletişim tarzı"},
		challenges: []string{"Monotonluk riski", "Aynı zayıflıklar", "Rekabet olasılığı"},
		advice:     "Farklılıklarınızı keşfetmeye ve birbirinizi tamamlamaya odaklanın.",
	}

	sameElementTemplate = template{
		text: func(a, b zodiac.Profile) string {
			return fmt.Sprintf(
				"%s ve %s aynı %s elementini paylaşır. Bu doğal bir uyum ve anlayış sağlar.",
				a.TurkishName, b.TurkishName, a.Element)
		},
		strengths:  []string{"Doğal uyum", "Benzer enerji seviyesi", "Kolay iletişim"},
		challenges: []string{"Çok benzer olabilirsiniz", "Denge bulmak zor olabilir"},
		advice:     "Ortak enerjinizi yapıcı projelere yönlendirin.",
	}

	complementaryTemplate = template{
		text: func(a, b zodiac.Profile) string {
			return fmt.Sprintf(
				"%s ve %s zodyakta birbirini tamamlayan burçlardır. Zıtlıklar çeker derler, bu ilişki için çok doğru!",
				a.TurkishName, b.TurkishName)
		},
		strengths:  []string{"Güçlü çekim", "Birbirini tamamlama", "Dengeli ilişki"},
		challenges: []string{"Farklı bakış açıları", "Zaman zaman anlaşmazlıklar"},
		advice:     "Farklılıklarınızı bir güç olarak görün, birbirinizden öğrenin.",
	}

	effortTemplate = template{
		text: func(a, b zodiac.Profile) string {
			return fmt.Sprintf(
				"%s ve %s ilginç bir kombinasyon oluşturur. Her ilişki gibi bu da çaba ve anlayış gerektirir.",
				a.TurkishName, b.TurkishName)
		},
		strengths:  []string{"Farklı perspektifler", "Büyüme fırsatı", "Dinamik ilişki"},
		challenges: []string{"Farklı ihtiyaçlar", "İletişim çalışması gerekli"},
		advice:     "Sabırlı olun ve birbirinizin farklılıklarına saygı gösterin.",
	}
)

var bonusStrengths = []struct {
	score  func(models.Score) int
	phrase string
}{
	{func(s models.Score) int { return s.LoveScore }, "Güçlü romantik çekim"},
	{func(s models.Score) int { return s.FriendshipScore }, "Harika arkadaşlık potansiyeli"},
	{func(s models.Score) int { return s.WorkScore }, "İş ortaklığı için ideal"},
}

// Describe builds the narrative for a scored pair. Four mutually
// exclusive cases are tried in priority order: identical signs, shared
// element, high-overall complements, and a generic fallback.
func Describe(a, b zodiac.Sign, score models.Score) models.Analysis {
	profileA := zodiac.MustLookup(a)
	profileB := zodiac.MustLookup(b)

	var tpl template
	switch {
	case a == b:
		tpl = mirrorTemplate
	case profileA.Element == profileB.Element:
		tpl = sameElementTemplate
	case score.OverallScore >= 70:
		tpl = complementaryTemplate
	default:
		tpl = effortTemplate
	}

	strengths := append([]string(nil), tpl.strengths...)
	for _, bonus := range bonusStrengths {
		if bonus.score(score) >= bonusStrengthThreshold {
			strengths = append(strengths, bonus.phrase)
		}
	}

	return models.Analysis{
		Text:       tpl.text(profileA, profileB),
		Strengths:  strengths,
		Challenges: append([]string(nil), tpl.challenges...),
		Advice:     tpl.advice,
	}
}
