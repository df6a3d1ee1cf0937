package analyzer

// SkillCategory groups related skill names under a category label
type SkillCategory struct {
	Name   string
	Skills []string
}

// DefaultVocabulary is the static catalog of known skill names. Category and
// skill order is significant: it fixes the iteration order of extraction, so
// results are deterministic. Extend the data, not the matching logic.
var DefaultVocabulary = []SkillCategory{
	{
		Name: "programming_languages",
		Skills: []string{
			"Python", "Java", "JavaScript", "C++", "C#", "Ruby", "Go", "Swift", "Kotlin", "PHP",
			"TypeScript", "Rust", "Scala", "Perl", "R", "MATLAB", "Shell", "SQL", "HTML", "CSS",
		},
	},
	{
		Name: "frameworks_libraries",
		Skills: []string{
			"React", "Angular", "Vue.js", "Django", "Flask", "Spring", "Express.js", "TensorFlow",
			"PyTorch", "Pandas", "NumPy", "scikit-learn", "Node.js", "jQuery", "Bootstrap", "Laravel",
			"ASP.NET", "Ruby on Rails", "Symfony", "FastAPI",
		},
	},
	{
		Name: "databases",
		Skills: []string{
			"MySQL", "PostgreSQL", "MongoDB", "SQLite", "Oracle", "SQL Server", "Redis", "Cassandra",
			"DynamoDB", "Firebase", "Elasticsearch", "MariaDB", "Neo4j", "CouchDB", "Firestore",
		},
	},
	{
		Name: "cloud_platforms",
		Skills: []string{
			"AWS", "Azure", "Google Cloud", "Heroku", "DigitalOcean", "IBM Cloud", "Oracle Cloud",
			"Alibaba Cloud", "Salesforce", "VMware", "OpenStack", "Kubernetes", "Docker",
		},
	},
	{
		Name: "tools_platforms",
		Skills: []string{
			"Git", "GitHub", "GitLab", "Bitbucket", "JIRA", "Confluence", "Jenkins", "Travis CI",
			"CircleCI", "Docker", "Kubernetes", "Terraform", "Ansible", "Puppet", "Chef", "Prometheus",
			"Grafana", "ELK Stack", "Nginx", "Apache",
		},
	},
	{
		Name: "soft_skills",
		Skills: []string{
			"Communication", "Teamwork", "Problem-solving", "Critical thinking", "Time management",
			"Leadership", "Adaptability", "Creativity", "Emotional intelligence", "Conflict resolution",
			"Decision making", "Project management", "Attention to detail", "Customer service",
		},
	},
}

// Flatten returns every skill name in vocabulary order, duplicates removed
// (a skill can appear under more than one category)
func Flatten(vocabulary []SkillCategory) []string {
	seen := make(map[string]bool)
	var skills []string
	for _, category := range vocabulary {
		for _, skill := range category.Skills {
			if !seen[skill] {
				seen[skill] = true
				skills = append(skills, skill)
			}
		}
	}
	return skills
}
