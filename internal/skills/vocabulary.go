package skills

// vocabulary is the fixed set of skill terms the matcher knows about.
// Terms are lowercase; detection is substring containment, so multi-word
// entries like "machine learning" match as written.
var vocabulary = []string{
	// Programming languages
	"python", "java", "javascript", "csharp", "c++", "ruby", "php", "swift",
	"kotlin", "rust", "go", "typescript", "scala", "r",

	// Web frameworks
	"django", "flask", "fastapi", "spring", "nodejs", "express", "react",
	"angular", "vue", "nextjs", "svelte",

	// Databases
	"sql", "mongodb", "postgresql", "mysql", "redis", "elasticsearch",
	"dynamodb", "cassandra", "firebasestore",

	// DevOps and cloud
	"docker", "kubernetes", "aws", "azure", "gcp", "git", "ci/cd",
	"jenkins", "gitlab", "github", "devops", "terraform",

	// Frontend and styling
	"html", "css", "bootstrap", "tailwind", "sass", "webpack", "babel",
	"jest", "cypress",

	// ML and data science
	"machine learning", "tensorflow", "pytorch", "scikit-learn", "nlp",
	"computer vision", "pandas", "numpy", "jupyter",

	// Tools and methodologies
	"agile", "scrum", "jira", "confluence", "asana", "trello",
	"linux", "windows", "macos", "rest api", "graphql",

	// Testing and quality
	"testing", "pytest", "junit", "selenium", "postman", "insomnia",
	"microservices", "oop", "design patterns",

	// Soft skills
	"communication", "leadership", "problem solving", "teamwork",
	"project management", "mentoring", "collaboration",
}

// Vocabulary returns a copy of the known skill terms. The underlying set is
// process-wide and read-only; callers get their own slice.
func Vocabulary() []string {
	out := make([]string, len(vocabulary))
	copy(out, vocabulary)
	return out
}
