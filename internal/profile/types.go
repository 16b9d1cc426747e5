// Package profile holds the builder directory: the profile model, the curated
// seed list, search and stats helpers, and the in-memory directory that new
// submissions are prepended to.
package profile

// Platform names a social link kind.
type Platform string

const (
	PlatformGithub   Platform = "github"
	PlatformTwitter  Platform = "twitter"
	PlatformLinkedIn Platform = "linkedin"
	PlatformWebsite  Platform = "website"
)

// Project is a piece of work shown on a builder profile.
type Project struct {
	Name        string `yaml:"name" json:"name"`
	URL         string `yaml:"url" json:"url"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Social is an external profile link.
type Social struct {
	Platform Platform `yaml:"platform" json:"platform"`
	URL      string   `yaml:"url" json:"url"`
}

// Builder is one directory profile.
type Builder struct {
	ID        string    `yaml:"id" json:"id"`
	Name      string    `yaml:"name" json:"name"`
	Role      string    `yaml:"role" json:"role"`
	Bio       string    `yaml:"bio" json:"bio"`
	FullBio   string    `yaml:"full_bio,omitempty" json:"full_bio,omitempty"`
	AvatarURL string    `yaml:"avatar_url" json:"avatar_url"`
	Skills    []string  `yaml:"skills" json:"skills"`
	Projects  []Project `yaml:"projects,omitempty" json:"projects,omitempty"`
	Socials   []Social  `yaml:"socials,omitempty" json:"socials,omitempty"`
	Featured  bool      `yaml:"featured,omitempty" json:"featured,omitempty"`
}

// BuilderID is the identity func handed to the carousel.
func BuilderID(b Builder) string {
	return b.ID
}

// About returns the long bio, falling back to the short one.
func (b Builder) About() string {
	if b.FullBio != "" {
		return b.FullBio
	}
	return b.Bio
}

// FirstName splits the display name for the profile header.
func (b Builder) FirstName() (first, rest string) {
	for i, r := range b.Name {
		if r == ' ' {
			return b.Name[:i], b.Name[i+1:]
		}
	}
	return b.Name, ""
}

// Clone returns a deep copy so callers can hand builders around freely.
func (b Builder) Clone() Builder {
	out := b
	out.Skills = append([]string(nil), b.Skills...)
	out.Projects = append([]Project(nil), b.Projects...)
	out.Socials = append([]Social(nil), b.Socials...)
	return out
}
