package matching

import (
	"bytes"
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"
)

var ErrEmptyRequirements = errors.New("required skills must not be empty")

// SkillSet holds normalized skill names.
type SkillSet map[string]struct{}

func NewSkillSet(names []string) SkillSet {
	out := make(SkillSet, len(names))
	for _, n := range names {
		n = NormalizeSkill(n)
		if n == "" {
			continue
		}
		out[n] = struct{}{}
	}
	return out
}

// NormalizeSkill trims, collapses inner whitespace and lower-cases a skill name.
func NormalizeSkill(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// Requirement is a project's deduplicated skill list. Names keep the casing of their
// first occurrence so they can be echoed back to callers.
type Requirement struct {
	names []string
	keys  []string
}

func NewRequirement(skills []string) (Requirement, error) {
	seen := make(map[string]struct{}, len(skills))
	r := Requirement{
		names: make([]string, 0, len(skills)),
		keys:  make([]string, 0, len(skills)),
	}
	for _, s := range skills {
		key := NormalizeSkill(s)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		r.names = append(r.names, strings.Join(strings.Fields(s), " "))
		r.keys = append(r.keys, key)
	}
	if len(r.keys) == 0 {
		return Requirement{}, ErrEmptyRequirements
	}
	return r, nil
}

func (r Requirement) Len() int { return len(r.keys) }

func (r Requirement) Names() []string {
	return append([]string(nil), r.names...)
}

type Result struct {
	Score         float64
	MatchedSkills []string
	MissingSkills []string
}

// Evaluate scores an employee's skills against r as the share of required skills covered.
func (r Requirement) Evaluate(employeeSkills []string) Result {
	have := NewSkillSet(employeeSkills)

	res := Result{
		MatchedSkills: make([]string, 0, len(r.keys)),
		MissingSkills: make([]string, 0),
	}
	for i, key := range r.keys {
		if _, ok := have[key]; ok {
			res.MatchedSkills = append(res.MatchedSkills, r.names[i])
			continue
		}
		res.MissingSkills = append(res.MissingSkills, r.names[i])
	}

	if len(r.keys) > 0 {
		res.Score = clampScore(float64(len(res.MatchedSkills)) / float64(len(r.keys)))
	}
	return res
}

// ComputeScore returns |required ∩ employee| / |required|.
func ComputeScore(requiredSkills, employeeSkills []string) (float64, error) {
	r, err := NewRequirement(requiredSkills)
	if err != nil {
		return 0, err
	}
	return r.Evaluate(employeeSkills).Score, nil
}

type Match struct {
	EmployeeID    uuid.UUID
	Score         float64
	MatchedSkills []string
	MissingSkills []string
}

// SortMatches orders by score descending, then employee id ascending.
func SortMatches(ms []Match) {
	sort.SliceStable(ms, func(i, j int) bool {
		if ms[i].Score != ms[j].Score {
			return ms[i].Score > ms[j].Score
		}
		return bytes.Compare(ms[i].EmployeeID[:], ms[j].EmployeeID[:]) < 0
	})
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
