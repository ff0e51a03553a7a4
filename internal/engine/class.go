package engine

import (
	"sort"
	"strings"

	"github.com/blaisecz/vital-quest/internal/domain"
)

// classKeywords is checked in order; the first class with a keyword contained
// in the dominant label wins. "walk" belongs to Ranger.
var classKeywords = []struct {
	class    domain.RPGClass
	keywords []string
}{
	{domain.ClassWarrior, []string{"gym", "weights", "strength", "lift", "training"}},
	{domain.ClassRanger, []string{"walk", "walking", "run", "jog", "cycle"}},
	{domain.ClassMonk, []string{"yoga", "stretch", "pilates", "meditation", "flexibility"}},
}

var classCategories = map[domain.RPGClass]string{
	domain.ClassWarrior:    "Strength",
	domain.ClassRanger:     "Endurance",
	domain.ClassMonk:       "Flexibility",
	domain.ClassVillager:   "Casual",
	domain.ClassAdventurer: "Balanced",
}

// NormalizeActivity trims and lower-cases an activity label.
func NormalizeActivity(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// MatchClass maps a normalized label onto a keyword class.
func MatchClass(label string) (domain.RPGClass, bool) {
	for _, ck := range classKeywords {
		for _, kw := range ck.keywords {
			if strings.Contains(label, kw) {
				return ck.class, true
			}
		}
	}
	return "", false
}

// ClassCategory is the training category suggested for a class.
func ClassCategory(c domain.RPGClass) string {
	if cat, ok := classCategories[c]; ok {
		return cat
	}
	return classCategories[domain.ClassAdventurer]
}

// Classify infers the RPG class from a window of workouts.
//
// The dominant label is the normalized label with the highest count. Ties go
// to the lexically smallest label, never to the label seen first, so the
// result does not depend on input order.
func Classify(workouts []domain.ManualWorkout) domain.ClassificationResult {
	res := domain.ClassificationResult{WorkoutCount: len(workouts)}
	if len(workouts) == 0 {
		res.Class = domain.ClassVillager
		res.Category = ClassCategory(res.Class)
		return res
	}

	label, _ := DominantActivity(workouts)
	res.DominantActivity = label

	switch c, ok := MatchClass(label); {
	case ok:
		res.Class = c
	case len(workouts) <= 1:
		res.Class = domain.ClassVillager
	default:
		res.Class = domain.ClassAdventurer
	}
	res.Category = ClassCategory(res.Class)
	return res
}

// DominantActivity returns the most frequent normalized label and its count.
// Equal counts resolve to the lexically smallest label. It returns "" and 0
// for no workouts.
func DominantActivity(workouts []domain.ManualWorkout) (string, int) {
	counts := make(map[string]int)
	for _, w := range workouts {
		counts[NormalizeActivity(w.ActivityType)]++
	}

	labels := make([]string, 0, len(counts))
	for l := range counts {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	var best string
	var bestCount int
	for _, l := range labels {
		if counts[l] > bestCount {
			best, bestCount = l, counts[l]
		}
	}
	return best, bestCount
}
