package matching

import (
	"math"
	"sort"
	"strings"
)

const topSkillDemand = 10

type Bucket struct {
	Label string
	Min   float64
	Max   float64
	Count int
}

type SkillDemand struct {
	Skill     string
	Projects  int
	Employees int
}

type Stats struct {
	TotalProjects   int
	TotalEmployees  int
	DistinctSkills  int
	ScoredProjects  int
	SkippedProjects int
	ScoredPairs     int
	AverageScore    float64
	MaxScore        float64
	MinScore        float64
	FullMatches     int
	ZeroMatches     int
	Distribution    []Bucket
	SkillDemand     []SkillDemand
}

// StatsBuilder accumulates scores and skill usage. The zero value is not usable; call
// NewStatsBuilder.
type StatsBuilder struct {
	stats   Stats
	sum     float64
	skills  map[string]*skillCount
	buckets []Bucket
}

type skillCount struct {
	name      string
	projects  int
	employees int
}

func NewStatsBuilder() *StatsBuilder {
	return &StatsBuilder{
		skills: map[string]*skillCount{},
		buckets: []Bucket{
			{Label: "0.00-0.25", Min: 0, Max: 0.25},
			{Label: "0.25-0.50", Min: 0.25, Max: 0.5},
			{Label: "0.50-0.75", Min: 0.5, Max: 0.75},
			{Label: "0.75-1.00", Min: 0.75, Max: 1},
		},
	}
}

func (b *StatsBuilder) AddProject(skills []string, scored bool) {
	b.stats.TotalProjects++
	if scored {
		b.stats.ScoredProjects++
	} else {
		b.stats.SkippedProjects++
	}
	for key, name := range uniqueNames(skills) {
		b.skill(key, name).projects++
	}
}

func (b *StatsBuilder) AddEmployee(skills []string) {
	b.stats.TotalEmployees++
	for key, name := range uniqueNames(skills) {
		b.skill(key, name).employees++
	}
}

func (b *StatsBuilder) AddScore(score float64) {
	score = clampScore(score)
	if b.stats.ScoredPairs == 0 {
		b.stats.MaxScore = score
		b.stats.MinScore = score
	}
	b.stats.ScoredPairs++
	b.sum += score
	b.stats.MaxScore = math.Max(b.stats.MaxScore, score)
	b.stats.MinScore = math.Min(b.stats.MinScore, score)
	if score == 1 {
		b.stats.FullMatches++
	}
	if score == 0 {
		b.stats.ZeroMatches++
	}
	for i := range b.buckets {
		last := i == len(b.buckets)-1
		if score >= b.buckets[i].Min && (score < b.buckets[i].Max || last) {
			b.buckets[i].Count++
			break
		}
	}
}

func (b *StatsBuilder) Build() Stats {
	out := b.stats
	out.DistinctSkills = len(b.skills)
	if out.ScoredPairs > 0 {
		out.AverageScore = roundScore(b.sum / float64(out.ScoredPairs))
	}
	out.Distribution = append([]Bucket(nil), b.buckets...)

	demand := make([]SkillDemand, 0, len(b.skills))
	for _, sc := range b.skills {
		if sc.projects == 0 {
			continue
		}
		demand = append(demand, SkillDemand{Skill: sc.name, Projects: sc.projects, Employees: sc.employees})
	}
	sort.Slice(demand, func(i, j int) bool {
		if demand[i].Projects != demand[j].Projects {
			return demand[i].Projects > demand[j].Projects
		}
		return NormalizeSkill(demand[i].Skill) < NormalizeSkill(demand[j].Skill)
	})
	if len(demand) > topSkillDemand {
		demand = demand[:topSkillDemand]
	}
	out.SkillDemand = demand
	return out
}

func (b *StatsBuilder) skill(key, name string) *skillCount {
	sc, ok := b.skills[key]
	if !ok {
		sc = &skillCount{name: name}
		b.skills[key] = sc
	}
	return sc
}

func uniqueNames(skills []string) map[string]string {
	out := make(map[string]string, len(skills))
	for _, s := range skills {
		key := NormalizeSkill(s)
		if key == "" {
			continue
		}
		if _, ok := out[key]; ok {
			continue
		}
		out[key] = strings.Join(strings.Fields(s), " ")
	}
	return out
}

func roundScore(v float64) float64 {
	return math.Round(v*10000) / 10000
}
