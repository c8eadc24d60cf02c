package types

// Category is a logical document kind kept in the portfolio repository.
type Category string

const (
	CategoryResume       Category = "resume"
	CategoryCoverLetter  Category = "cover-letter"
	CategoryAchievements Category = "achievements"
	CategoryProfile      Category = "profile"
)

// ProfileFile is the repository-root file behind CategoryProfile.
const ProfileFile = "profile.json"

var (
	documentExtensions    = []string{".pdf", ".doc", ".docx"}
	achievementExtensions = []string{".pdf", ".jpg", ".jpeg", ".png", ".gif"}
)

// CategorySpec describes where a category lives and which files belong to it.
type CategorySpec struct {
	Category Category
	// Dir is the remote subdirectory. Empty for single-file categories.
	Dir string
	// File is the remote file path for single-file categories.
	File       string
	Extensions []string
	// Fallback is returned by single lookups that find nothing. Nil means no fallback.
	Fallback func() *FileDescriptor
}

// IsDirectory reports whether the category is resolved from a directory listing.
func (s CategorySpec) IsDirectory() bool {
	return s.Dir != ""
}

var categories = map[Category]CategorySpec{
	CategoryResume: {
		Category:   CategoryResume,
		Dir:        "resume",
		Extensions: documentExtensions,
		Fallback: func() *FileDescriptor {
			d := PlaceholderResume()
			return &d
		},
	},
	CategoryCoverLetter: {
		Category:   CategoryCoverLetter,
		Dir:        "cover-letter",
		Extensions: documentExtensions,
	},
	CategoryAchievements: {
		Category:   CategoryAchievements,
		Dir:        "achievements",
		Extensions: achievementExtensions,
	},
	CategoryProfile: {
		Category: CategoryProfile,
		File:     ProfileFile,
	},
}

// LookupCategory returns the CategorySpec registered for c.
func LookupCategory(c Category) (CategorySpec, bool) {
	spec, ok := categories[c]
	return spec, ok
}

// Categories lists every known category in a stable order.
func Categories() []Category {
	return []Category{CategoryResume, CategoryCoverLetter, CategoryAchievements, CategoryProfile}
}
