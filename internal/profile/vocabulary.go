package profile

// Vocabulary is the ordered list of canonical skill names matched against
// resume text. Matching is case-insensitive substring containment; reported
// skills follow vocabulary order, not text order.
type Vocabulary []string

// DefaultVocabulary returns the built-in canonical skill list. Deployments can
// replace it wholesale via the vocabulary config key.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		"html", "css", "javascript", "react", "next.js", "node.js",
		"python", "django", "java", "sql", "mongodb", "tailwind",
		"bootstrap", "git", "figma", "php", "laravel", "typescript",
		"c#", "c++", "docker", "kubernetes", "aws", "azure", "gcp",
		"rest", "graphql",
	}
}
