package spacing

import (
	"math"
	"sort"

	"github.com/vytor/srep/internal/models"
)

// AggregateProblems returns one row per problem with the mean knowledge over
// all of its tags. Tags never logged for the problem count as KS 0 and are left
// out of the RF mean; a problem with no logged tag has KS 0 and no RF.
func AggregateProblems(problems []models.Problem, scores map[Key]Knowledge) []models.ProblemScore {
	rows := make([]models.ProblemScore, 0, len(problems))
	for _, p := range problems {
		row := models.ProblemScore{Problem: p}

		var sumKS, sumRF float64
		for _, t := range p.Tags {
			k, ok := scores[Key{ProblemID: p.ID, TagID: t.ID}]
			if !ok {
				continue
			}
			row.LoggedTags++
			sumKS += k.KS
			sumRF += k.RF
			if row.LastAccess == nil || k.LastTimestamp.After(*row.LastAccess) {
				ts := k.LastTimestamp
				row.LastAccess = &ts
			}
		}

		if row.LoggedTags > 0 {
			row.KS = sumKS / float64(len(p.Tags))
			rf := sumRF / float64(row.LoggedTags)
			row.RF = &rf
		}
		rows = append(rows, row)
	}
	return rows
}

// TagRow is the knowledge of one (problem, tag) pair denormalized with the
// problem's difficulty. KS is nil when the pair was never attempted.
type TagRow struct {
	TagID      int64
	ProblemID  int64
	Difficulty models.Difficulty
	KS         *float64
}

// DenormalizeTags emits one row for every tag of every problem.
func DenormalizeTags(problems []models.Problem, scores map[Key]Knowledge) []TagRow {
	var rows []TagRow
	for _, p := range problems {
		for _, t := range p.Tags {
			row := TagRow{TagID: t.ID, ProblemID: p.ID, Difficulty: p.Difficulty}
			if k, ok := scores[Key{ProblemID: p.ID, TagID: t.ID}]; ok {
				ks := k.KS
				row.KS = &ks
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// PrioritizeTags ranks every tag by study priority, most urgent first.
// Tags without rows get zero scores and sort to the top.
func PrioritizeTags(tags []models.Tag, rows []TagRow) []models.TagPriority {
	byTag := make(map[int64][]TagRow, len(tags))
	for _, r := range rows {
		byTag[r.TagID] = append(byTag[r.TagID], r)
	}

	out := make([]models.TagPriority, 0, len(tags))
	for _, t := range tags {
		out = append(out, prioritize(t, byTag[t.ID]))
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority < out[j].Priority
		}
		if out[i].WeightedKS != out[j].WeightedKS {
			return out[i].WeightedKS < out[j].WeightedKS
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func prioritize(t models.Tag, rows []TagRow) models.TagPriority {
	problems := make(map[int64]bool)
	logged := make(map[int64]bool)
	sums := make(map[models.Difficulty]float64)
	counts := make(map[models.Difficulty]int)

	for _, r := range rows {
		problems[r.ProblemID] = true
		if r.KS == nil {
			continue
		}
		logged[r.ProblemID] = true
		sums[r.Difficulty] += *r.KS
		counts[r.Difficulty]++
	}

	mean := func(d models.Difficulty) float64 {
		if counts[d] == 0 {
			return 0
		}
		return sums[d] / float64(counts[d])
	}

	tp := models.TagPriority{
		Tag:         t,
		MeanEasy:    mean(models.Easy),
		MeanMedium:  mean(models.Medium),
		MeanHard:    mean(models.Hard),
		NumProblems: len(problems),
		NumLogged:   len(logged),
	}
	tp.WeightedKS = WeightedKS(tp.MeanEasy, tp.MeanMedium, tp.MeanHard)
	tp.Experience = Experience(tp.NumLogged)
	tp.Priority = tp.WeightedKS * tp.Experience
	return tp
}

// WeightedKS keeps the strongest per-difficulty signal.
func WeightedKS(easy, medium, hard float64) float64 {
	return math.Max(EasyWeight*easy, math.Max(MediumWeight*medium, HardWeight*hard))
}

// Experience normalizes the number of distinct logged problems of a tag to [0, 1].
func Experience(loggedProblems int) float64 {
	return math.Min(1, float64(loggedProblems)/ExperienceProblems)
}
