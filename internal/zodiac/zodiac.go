// Package zodiac holds the static reference data for the twelve signs:
// elements, modalities, date ranges, traits and lucky attributes, plus
// name resolution (English keys and Turkish names) and birth-date
// mapping. The data is read-only and loaded at compile time.
package zodiac

import (
	"fmt"
	"strings"
	"time"
)

// Sign is one of the twelve zodiac identifiers.
type Sign string

const (
	Aries       Sign = "aries"
	Taurus      Sign = "taurus"
	Gemini      Sign = "gemini"
	Cancer      Sign = "cancer"
	Leo         Sign = "leo"
	Virgo       Sign = "virgo"
	Libra       Sign = "libra"
	Scorpio     Sign = "scorpio"
	Sagittarius Sign = "sagittarius"
	Capricorn   Sign = "capricorn"
	Aquarius    Sign = "aquarius"
	Pisces      Sign = "pisces"
)

// Signs lists all signs in zodiac-wheel order. Date resolution scans
// this slice in order, so it must stay sorted by date range.
var Signs = []Sign{
	Aries, Taurus, Gemini, Cancer, Leo, Virgo,
	Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces,
}

// Element values carry the Turkish display form used in generated text.
type Element string

const (
	Fire  Element = "ateş"
	Earth Element = "toprak"
	Air   Element = "hava"
	Water Element = "su"
)

// Modality values carry the Turkish display form.
type Modality string

const (
	Cardinal Modality = "öncü"
	Fixed    Modality = "sabit"
	Mutable  Modality = "değişken"
)

// DateRange bounds a sign's period as "MM-DD" strings. The bounds
// compare lexicographically, which matches chronological order for
// zero-padded month-day values.
type DateRange struct {
	Start string
	End   string
}

// Profile is the read-only reference data attached to a sign.
type Profile struct {
	TurkishName  string    `json:"turkish_name"`
	Symbol       string    `json:"symbol"`
	Element      Element   `json:"element"`
	Modality     Modality  `json:"modality"`
	Ruler        string    `json:"ruler"`
	DateRange    DateRange `json:"date_range"`
	Traits       []string  `json:"traits"`
	LuckyNumbers []int     `json:"lucky_numbers"`
	LuckyDay     string    `json:"lucky_day"`
	Color        string    `json:"color"`
	Stone        string    `json:"stone"`
}

var profiles = map[Sign]Profile{
	Aries: {
		TurkishName:  "Koç",
		Symbol:       "♈",
		Element:      Fire,
		Modality:     Cardinal,
		Ruler:        "Mars",
		DateRange:    DateRange{Start: "03-21", End: "04-19"},
		Traits:       []string{"cesur", "enerjik", "öncü", "rekabetçi", "tutkulu"},
		LuckyNumbers: []int{1, 9, 17},
		LuckyDay:     "Salı",
		Color:        "Kırmızı",
		Stone:        "Elmas",
	},
	Taurus: {
		TurkishName:  "Boğa",
		Symbol:       "♉",
		Element:      Earth,
		Modality:     Fixed,
		Ruler:        "Venüs",
		DateRange:    DateRange{Start: "04-20", End: "05-20"},
		Traits:       []string{"güvenilir", "sabırlı", "pratik", "sadık", "duyusal"},
		LuckyNumbers: []int{2, 6, 24},
		LuckyDay:     "Cuma",
		Color:        "Yeşil",
		Stone:        "Zümrüt",
	},
	Gemini: {
		TurkishName:  "İkizler",
		Symbol:       "♊",
		Element:      Air,
		Modality:     Mutable,
		Ruler:        "Merkür",
		DateRange:    DateRange{Start: "05-21", End: "06-20"},
		Traits:       []string{"meraklı", "uyumlu", "iletişimci", "zeki", "çok yönlü"},
		LuckyNumbers: []int{3, 5, 14},
		LuckyDay:     "Çarşamba",
		Color:        "Sarı",
		Stone:        "Akik",
	},
	Cancer: {
		TurkishName:  "Yengeç",
		Symbol:       "♋",
		Element:      Water,
		Modality:     Cardinal,
		Ruler:        "Ay",
		DateRange:    DateRange{Start: "06-21", End: "07-22"},
		Traits:       []string{"duygusal", "koruyucu", "sezgisel", "sadık", "şefkatli"},
		LuckyNumbers: []int{2, 7, 11},
		LuckyDay:     "Pazartesi",
		Color:        "Gümüş",
		Stone:        "İnci",
	},
	Leo: {
		TurkishName:  "Aslan",
		Symbol:       "♌",
		Element:      Fire,
		Modality:     Fixed,
		Ruler:        "Güneş",
		DateRange:    DateRange{Start: "07-23", End: "08-22"},
		Traits:       []string{"yaratıcı", "cömert", "karizmatik", "lider", "dramatik"},
		LuckyNumbers: []int{1, 4, 19},
		LuckyDay:     "Pazar",
		Color:        "Altın",
		Stone:        "Yakut",
	},
	Virgo: {
		TurkishName:  "Başak",
		Symbol:       "♍",
		Element:      Earth,
		Modality:     Mutable,
		Ruler:        "Merkür",
		DateRange:    DateRange{Start: "08-23", End: "09-22"},
		Traits:       []string{"analitik", "çalışkan", "pratik", "detaycı", "yardımsever"},
		LuckyNumbers: []int{5, 14, 23},
		LuckyDay:     "Çarşamba",
		Color:        "Lacivert",
		Stone:        "Safir",
	},
	Libra: {
		TurkishName:  "Terazi",
		Symbol:       "♎",
		Element:      Air,
		Modality:     Cardinal,
		Ruler:        "Venüs",
		DateRange:    DateRange{Start: "09-23", End: "10-22"},
		Traits:       []string{"diplomatik", "zarif", "adil", "sosyal", "romantik"},
		LuckyNumbers: []int{6, 15, 24},
		LuckyDay:     "Cuma",
		Color:        "Pembe",
		Stone:        "Opal",
	},
	Scorpio: {
		TurkishName:  "Akrep",
		Symbol:       "♏",
		Element:      Water,
		Modality:     Fixed,
		Ruler:        "Plüton",
		DateRange:    DateRange{Start: "10-23", End: "11-21"},
		Traits:       []string{"tutkulu", "kararlı", "gizemli", "güçlü", "sezgisel"},
		LuckyNumbers: []int{8, 11, 18},
		LuckyDay:     "Salı",
		Color:        "Bordo",
		Stone:        "Topaz",
	},
	Sagittarius: {
		TurkishName:  "Yay",
		Symbol:       "♐",
		Element:      Fire,
		Modality:     Mutable,
		Ruler:        "Jüpiter",
		DateRange:    DateRange{Start: "11-22", End: "12-21"},
		Traits:       []string{"iyimser", "maceraperest", "özgür", "felsefi", "dürüst"},
		LuckyNumbers: []int{3, 12, 21},
		LuckyDay:     "Perşembe",
		Color:        "Mor",
		Stone:        "Turkuaz",
	},
	Capricorn: {
		TurkishName:  "Oğlak",
		Symbol:       "♑",
		Element:      Earth,
		Modality:     Cardinal,
		Ruler:        "Satürn",
		DateRange:    DateRange{Start: "12-22", End: "01-19"},
		Traits:       []string{"disiplinli", "hırslı", "sorumlu", "sabırlı", "pratik"},
		LuckyNumbers: []int{4, 8, 22},
		LuckyDay:     "Cumartesi",
		Color:        "Kahverengi",
		Stone:        "Garnet",
	},
	Aquarius: {
		TurkishName:  "Kova",
		Symbol:       "♒",
		Element:      Air,
		Modality:     Fixed,
		Ruler:        "Uranüs",
		DateRange:    DateRange{Start: "01-20", End: "02-18"},
		Traits:       []string{"yenilikçi", "bağımsız", "insancıl", "orijinal", "entelektüel"},
		LuckyNumbers: []int{4, 7, 11},
		LuckyDay:     "Cumartesi",
		Color:        "Mavi",
		Stone:        "Ametist",
	},
	Pisces: {
		TurkishName:  "Balık",
		Symbol:       "♓",
		Element:      Water,
		Modality:     Mutable,
		Ruler:        "Neptün",
		DateRange:    DateRange{Start: "02-19", End: "03-20"},
		Traits:       []string{"hayalperest", "empatik", "sanatsal", "sezgisel", "şefkatli"},
		LuckyNumbers: []int{3, 9, 12},
		LuckyDay:     "Perşembe",
		Color:        "Deniz Mavisi",
		Stone:        "Akvamarin",
	},
}

// Turkish name → English key, including ASCII-folded spellings so
// clients without Turkish keyboards resolve too.
var turkishAliases = map[string]Sign{
	"koç": Aries, "koc": Aries,
	"boğa": Taurus, "boga": Taurus,
	"ikizler": Gemini,
	"yengeç":  Cancer, "yengec": Cancer,
	"aslan": Leo,
	"başak": Virgo, "basak": Virgo,
	"terazi": Libra,
	"akrep":  Scorpio,
	"yay":    Sagittarius,
	"oğlak":  Capricorn, "oglak": Capricorn,
	"kova":  Aquarius,
	"balık": Pisces, "balik": Pisces,
}

// Lookup returns the profile for a sign. The sign set is closed, so a
// miss is a programming error rather than user input.
func Lookup(sign Sign) (Profile, error) {
	profile, ok := profiles[sign]
	if !ok {
		return Profile{}, fmt.Errorf("no profile for sign %q", sign)
	}
	return profile, nil
}

// MustLookup is Lookup for callers holding an already-resolved sign.
func MustLookup(sign Sign) Profile {
	profile, err := Lookup(sign)
	if err != nil {
		panic(err)
	}
	return profile
}

// Resolve maps user input to a sign. It accepts canonical English keys
// and Turkish names, case-insensitively. ok is false for anything else.
func Resolve(input string) (Sign, bool) {
	lower := strings.ToLower(strings.TrimSpace(input))

	if _, exists := profiles[Sign(lower)]; exists {
		return Sign(lower), true
	}

	if sign, exists := turkishAliases[lower]; exists {
		return sign, true
	}

	return "", false
}

// SignFromDate maps a calendar date to its sign. Capricorn spans the
// year boundary, so its range tests start OR end instead of a bounded
// AND. The twelve ranges tile the year; the trailing capricorn return
// is a fallback for a day no range claims, which cannot happen, and is
// kept only to mirror the documented reference behavior.
func SignFromDate(t time.Time) Sign {
	mmdd := fmt.Sprintf("%02d-%02d", int(t.Month()), t.Day())

	for _, sign := range Signs {
		r := profiles[sign].DateRange

		if sign == Capricorn {
			if mmdd >= r.Start || mmdd <= r.End {
				return sign
			}
		} else {
			if mmdd >= r.Start && mmdd <= r.End {
				return sign
			}
		}
	}

	return Capricorn
}
