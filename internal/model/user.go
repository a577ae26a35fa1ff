package model

// Role distinguishes the two kinds of marketplace accounts.
type Role string

const (
	RoleClient     Role = "client"
	RoleFreelancer Role = "freelancer"
)

// Session is the authenticated user record. It is created from a login or
// registration response, persisted locally, and destroyed on logout.
type Session struct {
	UserID     string   `json:"user_id"`
	ID         string   `json:"id,omitempty"`
	Name       string   `json:"name"`
	Email      string   `json:"email,omitempty"`
	Role       Role     `json:"role"`
	TrustScore float64  `json:"trust_score"`
	Skills     []string `json:"skills,omitempty"`
	MinRate    float64  `json:"min_rate,omitempty"`
	Region     string   `json:"region,omitempty"`
	Languages  []string `json:"languages,omitempty"`
}

// Normalize fills UserID from ID for responses that only carry "id".
func (s *Session) Normalize() {
	if s.UserID == "" && s.ID != "" {
		s.UserID = s.ID
	}
}

// IsClient reports whether the session belongs to a client account.
func (s *Session) IsClient() bool {
	return s.Role == RoleClient
}

// Profile is the editable user record returned by GET /users/{id}.
type Profile struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Role       Role     `json:"role"`
	Bio        string   `json:"bio"`
	CompanyBio string   `json:"company_bio"`
	Skills     []string `json:"skills"`
	MinRate    float64  `json:"min_rate"`
	Languages  []string `json:"languages"`
	Language   string   `json:"language"`
	Region     string   `json:"region"`
	GitHub     string   `json:"github"`
	LinkedIn   string   `json:"linkedin"`
	Portfolio  string   `json:"portfolio"`
	ResumeURL  string   `json:"resume_url"`
	TrustScore float64  `json:"trust_score"`
	Experience string   `json:"experience_level"`
}

// SpokenLanguages returns the profile languages, falling back to the legacy
// single-language field and finally to English.
func (p Profile) SpokenLanguages() []string {
	if len(p.Languages) > 0 {
		return p.Languages
	}
	if p.Language != "" {
		return []string{p.Language}
	}
	return []string{"English"}
}

// ProfileUpdate is the PUT /users/{id} payload. Nil fields are left unchanged.
type ProfileUpdate struct {
	Name       *string  `json:"name,omitempty"`
	Languages  []string `json:"languages,omitempty"`
	Region     *string  `json:"region,omitempty"`
	CompanyBio *string  `json:"company_bio,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	MinRate    *float64 `json:"min_rate,omitempty"`
	GitHub     *string  `json:"github,omitempty"`
	LinkedIn   *string  `json:"linkedin,omitempty"`
	Portfolio  *string  `json:"portfolio,omitempty"`
}

// ApplyTo merges the update into a session so the local copy matches what
// was sent to the backend.
func (u ProfileUpdate) ApplyTo(s *Session) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Languages != nil {
		s.Languages = u.Languages
	}
	if u.Region != nil {
		s.Region = *u.Region
	}
	if u.Skills != nil {
		s.Skills = u.Skills
	}
	if u.MinRate != nil {
		s.MinRate = *u.MinRate
	}
}

// Registration is the POST /auth/register payload.
type Registration struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Role      Role     `json:"role"`
	Skills    []string `json:"skills,omitempty"`
	MinRate   float64  `json:"min_rate,omitempty"`
	Region    string   `json:"region,omitempty"`
	Languages []string `json:"languages,omitempty"`
}

// NewSessionFromRegistration builds the session stored after a successful
// registration. Freelancers start with a trust score of 50.
func NewSessionFromRegistration(userID string, r Registration) Session {
	s := Session{
		UserID: userID,
		Name:   r.Name,
		Email:  r.Email,
		Role:   r.Role,
		Skills: r.Skills,
		Region: r.Region,
	}
	if r.Role == RoleFreelancer {
		s.TrustScore = 50
		s.MinRate = r.MinRate
	}
	return s
}
