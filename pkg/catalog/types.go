package catalog

// Stagiaire is an intern record as stored by the backend.
type Stagiaire struct {
	ID          int    `json:"id,omitempty"`
	CIN         string `json:"cin"`
	Nom         string `json:"nom"`
	Prenom      string `json:"prenom"`
	Email       string `json:"email,omitempty"`
	Description string `json:"description,omitempty"`
	Institution string `json:"institution,omitempty"`
	Niveau      string `json:"niveau,omitempty"`
}

// Tuteur is a workplace supervisor record as stored by the backend.
type Tuteur struct {
	ID         int    `json:"id,omitempty"`
	CIN        string `json:"cin"`
	Nom        string `json:"nom"`
	Prenom     string `json:"prenom"`
	Email      string `json:"email,omitempty"`
	Fonction   string `json:"fonction,omitempty"`
	Entreprise string `json:"entreprise,omitempty"`
	Technos    string `json:"technos,omitempty"`
}

// FullName joins prenom and nom for display fields.
func (s Stagiaire) FullName() string { return joinName(s.Prenom, s.Nom) }

// FullName joins prenom and nom for display fields.
func (t Tuteur) FullName() string { return joinName(t.Prenom, t.Nom) }

func joinName(prenom, nom string) string {
	switch {
	case prenom == "":
		return nom
	case nom == "":
		return prenom
	default:
		return prenom + " " + nom
	}
}
