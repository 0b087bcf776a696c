package salary

import "strings"

// VectorWidth is the fixed feature vector width. The layout below uses the
// first 40 positions; the remainder stays zero and is reserved for future
// vocabulary growth without retraining incompatibility.
const VectorWidth = 50

// Layout offsets. Order is load-bearing: weights are only meaningful against
// the exact layout they were trained on.
const (
	skillOffset      = 0                     // 20 skill flags
	locationOffset   = skillOffset + 20      // 10 location flags
	experienceOffset = locationOffset + 10   // 5 experience flags
	degreeOffset     = experienceOffset + 5  // 3 degree flags
	categoryOffset   = degreeOffset + 3      // 2 category features
)

var skillVocabulary = []string{
	"javascript", "python", "java", "react", "node",
	"angular", "sql", "mongodb", "aws", "docker",
	"kubernetes", "go", "typescript", "html", "css",
	"machine learning", "data analysis", "excel", "communication", "leadership",
}

var locationVocabulary = []string{
	"bangalore", "mumbai", "delhi", "hyderabad", "chennai",
	"pune", "kolkata", "noida", "gurgaon", "remote",
}

// experienceLevels is the one-hot enumeration order.
var experienceLevels = []string{"entry", "mid", "senior", "executive", "fresher"}

var degreeKeywords = [3][]string{
	{"bachelor", "b.tech", "btech", "b.e", "bsc", "bca", "bcom", "ba "},
	{"master", "m.tech", "mtech", "msc", "mba", "mca", "mcom", "ma "},
	{"phd", "ph.d", "doctor"},
}

// categoryIndex is a fixed table; anything absent (including the empty
// string) falls back to index 0. The category contributes two compressed
// features, index/10 and index parity, instead of a one-hot block.
var categoryIndex = map[string]int{
	"software":   1,
	"marketing":  2,
	"finance":    3,
	"design":     4,
	"sales":      5,
	"hr":         6,
	"operations": 7,
	"education":  8,
	"healthcare": 9,
}

// Record is a profile/job record. Every field is optional; absent fields
// simply leave their feature positions at zero. Salary carries the ground
// truth on training samples and is ignored on query input.
type Record struct {
	Skills          []string
	Location        string
	ExperienceLevel string
	Education       []string
	Category        string
	Salary          float64
}

// Encode maps a record into the fixed-width vector. Deterministic and pure:
// unknown skills are dropped, unknown experience levels leave the block zero,
// locations match by case-insensitive substring containment.
func Encode(rec Record) []float64 {
	vec := make([]float64, VectorWidth)

	for _, skill := range rec.Skills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		for i, known := range skillVocabulary {
			if skill == known {
				vec[skillOffset+i] = 1
			}
		}
	}

	location := strings.ToLower(rec.Location)
	for i, known := range locationVocabulary {
		if strings.Contains(location, known) {
			vec[locationOffset+i] = 1
		}
	}

	level := strings.ToLower(strings.TrimSpace(rec.ExperienceLevel))
	for i, known := range experienceLevels {
		if level == known {
			vec[experienceOffset+i] = 1
		}
	}

	if d := highestDegree(rec.Education); d >= 0 {
		vec[degreeOffset+d] = 1
	}

	idx := categoryIndex[strings.ToLower(strings.TrimSpace(rec.Category))]
	vec[categoryOffset] = float64(idx) / 10.0
	vec[categoryOffset+1] = float64(idx % 2)

	return vec
}

// highestDegree scans all degree strings and returns 0 for bachelor,
// 1 for master, 2 for doctorate, -1 when nothing matches.
func highestDegree(education []string) int {
	best := -1
	for _, degree := range education {
		degree = strings.ToLower(degree)
		for level := 2; level >= 0; level-- {
			if level <= best {
				break
			}
			for _, kw := range degreeKeywords[level] {
				if strings.Contains(degree, kw) {
					best = level
					break
				}
			}
		}
	}
	return best
}

// nonZeroFraction feeds the completeness-based confidence heuristic.
func nonZeroFraction(vec []float64) float64 {
	if len(vec) == 0 {
		return 0
	}
	n := 0
	for _, v := range vec {
		if v != 0 {
			n++
		}
	}
	return float64(n) / float64(len(vec))
}
