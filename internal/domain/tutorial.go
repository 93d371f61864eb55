package domain

// TutorialDescriptor is one registered tutorial. (Category, Name) is unique.
type TutorialDescriptor struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	Name      string `json:"name"`
	SourceURI string `json:"sourceUri"`
}

// Matches reports whether the descriptor has the given name and category
func (t TutorialDescriptor) Matches(name, category string) bool {
	return t.Name == name && t.Category == category
}

// HeadingAnnotation is a heading found in rendered markup together with the
// raw value of its time annotation
type HeadingAnnotation struct {
	Label         string
	RawAnnotation string
}
