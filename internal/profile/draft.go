package profile

import (
	"errors"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

var (
	ErrNameRequired = errors.New("name is required")
	ErrRoleRequired = errors.New("role is required")
	ErrBioRequired  = errors.New("bio is required")
)

// Draft is the raw add-profile form input.
type Draft struct {
	Name      string
	Role      string
	Bio       string
	AvatarURL string
	Skills    string // comma separated
	Github    string
	Twitter   string
	Website   string
}

// Validate checks the required fields and joins every failure.
func (d Draft) Validate() error {
	var errs []error
	if strings.TrimSpace(d.Name) == "" {
		errs = append(errs, ErrNameRequired)
	}
	if strings.TrimSpace(d.Role) == "" {
		errs = append(errs, ErrRoleRequired)
	}
	if strings.TrimSpace(d.Bio) == "" {
		errs = append(errs, ErrBioRequired)
	}
	return errors.Join(errs...)
}

// SkillList splits the comma separated skills, dropping blanks.
func (d Draft) SkillList() []string {
	return SplitSkills(d.Skills)
}

// SplitSkills splits a comma separated list, trimming and dropping blanks.
func SplitSkills(raw string) []string {
	parts := lo.Map(strings.Split(raw, ","), func(s string, _ int) string { return strings.TrimSpace(s) })
	return lo.Compact(parts)
}

// BuildOptions controls the generated parts of a new builder.
type BuildOptions struct {
	NewID  func() string
	Avatar func() string
}

// DefaultBuildOptions uses random UUIDs and a random placeholder avatar.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		NewID: func() string { return uuid.NewString() },
		Avatar: func() string {
			return AvatarPlaceholders[rand.IntN(len(AvatarPlaceholders))]
		},
	}
}

// Build validates the draft and turns it into a builder.
func (d Draft) Build(opts BuildOptions) (Builder, error) {
	if err := d.Validate(); err != nil {
		return Builder{}, err
	}
	if opts.NewID == nil || opts.Avatar == nil {
		def := DefaultBuildOptions()
		if opts.NewID == nil {
			opts.NewID = def.NewID
		}
		if opts.Avatar == nil {
			opts.Avatar = def.Avatar
		}
	}

	var socials []Social
	for _, s := range []Social{
		{Platform: PlatformGithub, URL: d.Github},
		{Platform: PlatformTwitter, URL: d.Twitter},
		{Platform: PlatformWebsite, URL: d.Website},
	} {
		s.URL = strings.TrimSpace(s.URL)
		if s.URL != "" {
			socials = append(socials, s)
		}
	}

	avatar := strings.TrimSpace(d.AvatarURL)
	if avatar == "" {
		avatar = opts.Avatar()
	}

	return Builder{
		ID:        opts.NewID(),
		Name:      strings.TrimSpace(d.Name),
		Role:      strings.TrimSpace(d.Role),
		Bio:       strings.TrimSpace(d.Bio),
		AvatarURL: avatar,
		Skills:    d.SkillList(),
		Projects:  []Project{},
		Socials:   socials,
	}, nil
}

// Dirty reports whether any field holds input.
func (d Draft) Dirty() bool {
	return lo.SomeBy([]string{d.Name, d.Role, d.Bio, d.Skills, d.Github, d.Twitter, d.Website}, func(s string) bool {
		return strings.TrimSpace(s) != ""
	})
}
