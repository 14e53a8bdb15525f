package domain

// Profile holds the business details of one user. Optional text fields are nil
// when the remote store has no value.
type Profile struct {
	ID            string
	UserID        string
	FullName      *string
	City          *string
	Services      []string
	Events        []string
	BrandStyle    *string
	PostFrequency *string
}

// ProfilePatch carries the fields of a partial profile update. Nil means
// "leave as is".
type ProfilePatch struct {
	FullName      *string
	City          *string
	Services      *[]string
	Events        *[]string
	BrandStyle    *string
	PostFrequency *string
}

// Empty reports whether the patch carries no field at all.
func (p ProfilePatch) Empty() bool {
	return p.FullName == nil && p.City == nil && p.Services == nil &&
		p.Events == nil && p.BrandStyle == nil && p.PostFrequency == nil
}

// Apply merges the patch into profile.
func (p ProfilePatch) Apply(profile *Profile) {
	if p.FullName != nil {
		profile.FullName = cloneString(p.FullName)
	}
	if p.City != nil {
		profile.City = cloneString(p.City)
	}
	if p.Services != nil {
		profile.Services = append([]string{}, (*p.Services)...)
	}
	if p.Events != nil {
		profile.Events = append([]string{}, (*p.Events)...)
	}
	if p.BrandStyle != nil {
		profile.BrandStyle = cloneString(p.BrandStyle)
	}
	if p.PostFrequency != nil {
		profile.PostFrequency = cloneString(p.PostFrequency)
	}
}

// Clone returns a deep copy of the profile.
func (p Profile) Clone() Profile {
	out := p
	out.FullName = cloneString(p.FullName)
	out.City = cloneString(p.City)
	out.BrandStyle = cloneString(p.BrandStyle)
	out.PostFrequency = cloneString(p.PostFrequency)
	out.Services = append([]string{}, p.Services...)
	out.Events = append([]string{}, p.Events...)
	return out
}

// NullIfEmpty maps a blank remote value to unset.
func NullIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return cloneString(s)
}
