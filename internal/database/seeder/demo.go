package seeder

import (
	"talent-match/internal/domain/employee"
	"talent-match/internal/domain/project"

	"github.com/google/uuid"
)

// Demo ids are name-based so reseeding updates rows in place.
var demoNamespace = uuid.MustParse("6f1c1f3e-3d43-4c5b-9a57-2d1f0b6c9e10")

func DemoID(kind, name string) uuid.UUID {
	return uuid.NewSHA1(demoNamespace, []byte(kind+":"+name))
}

func DemoProjects() []project.Project {
	items := []struct {
		name, desc string
		skills     []string
	}{
		{
			name:   "AI-Powered E-commerce Platform",
			desc:   "A modern e-commerce platform with AI recommendations and analytics",
			skills: []string{"React", "TypeScript", "Node.js", "Python", "TensorFlow", "Docker", "AWS"},
		},
		{
			name:   "Customer Data Warehouse",
			desc:   "Consolidate CRM and billing data into a reporting warehouse",
			skills: []string{"Python", "SQL", "Airflow", "PostgreSQL"},
		},
		{
			name:   "Mobile Banking App",
			desc:   "Cross-platform banking client with biometric login",
			skills: []string{"React Native", "TypeScript", "Kotlin", "Swift"},
		},
		{
			name:   "Platform Observability",
			desc:   "Metrics, tracing and alerting for the internal Kubernetes platform",
			skills: []string{"Go", "Kubernetes", "Prometheus", "Grafana"},
		},
	}

	out := make([]project.Project, 0, len(items))
	for _, it := range items {
		out = append(out, project.Project{
			ID:          DemoID("project", it.name),
			Name:        it.name,
			Description: it.desc,
			Skills:      it.skills,
		})
	}
	return out
}

func DemoEmployees() []employee.Employee {
	str := func(s string) *string { return &s }
	items := []struct {
		name, role   string
		skills       []string
		seniority    string
		availability string
	}{
		{name: "Alice Johnson", role: "Frontend Developer", skills: []string{"React", "TypeScript", "Node.js", "CSS"}, seniority: "senior", availability: "available"},
		{name: "Bob Smith", role: "Backend Developer", skills: []string{"Python", "Node.js", "PostgreSQL", "Docker"}, seniority: "mid", availability: "partial"},
		{name: "Carol Lee", role: "ML Engineer", skills: []string{"Python", "TensorFlow", "scikit-learn", "SQL"}, seniority: "senior", availability: "available"},
		{name: "David Kim", role: "DevOps Engineer", skills: []string{"Docker", "Kubernetes", "AWS", "Go", "Prometheus"}, seniority: "lead", availability: "unavailable"},
		{name: "Eva Martins", role: "Mobile Developer", skills: []string{"React Native", "Swift", "Kotlin"}, seniority: "mid", availability: "available"},
		{name: "Farid Haddad", role: "Data Engineer", skills: []string{"Python", "Airflow", "SQL", "Spark"}, seniority: "junior", availability: "available"},
	}

	out := make([]employee.Employee, 0, len(items))
	for _, it := range items {
		out = append(out, employee.Employee{
			ID:           DemoID("employee", it.name),
			Name:         it.name,
			Role:         it.role,
			Skills:       it.skills,
			Seniority:    str(it.seniority),
			Availability: str(it.availability),
		})
	}
	return out
}
