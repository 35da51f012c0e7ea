package backend

import "github.com/goliatone/go-stageval/pkg/catalog"

// Stage is one internship engagement: what was worked on and where.
type Stage struct {
	ID          int    `json:"id,omitempty"`
	Description string `json:"description"`
	Objectif    string `json:"objectif"`
	Entreprise  string `json:"entreprise"`
}

// Periode links one stagiaire to one stage over a date range. Dates use the
// backend's wire spelling (date_debut/date_fin).
type Periode struct {
	StagiaireID int    `json:"stagiaireId"`
	StageID     int    `json:"stageId"`
	DateDebut   string `json:"date_debut"`
	DateFin     string `json:"date_fin"`
}

// Evaluation is one rated dimension of the global assessment.
type Evaluation struct {
	Categorie string `json:"categorie"`
	Valeur    string `json:"valeur"`
}

// Category is one axis inside a competence group.
type Category struct {
	Intitule string `json:"intitule"`
	Valeur   string `json:"valeur"`
}

// Competence is a named group of category axes plus its numeric grade.
type Competence struct {
	Intitule   string     `json:"intitule"`
	Note       float64    `json:"note"`
	Categories []Category `json:"categories"`
}

// Appreciation is the composite evaluation record submitted once per
// successful wizard run.
type Appreciation struct {
	StagiaireID int          `json:"stagiaireId"`
	StageID     int          `json:"stageId"`
	TuteurID    int          `json:"tuteurId"`
	Evaluations []Evaluation `json:"evaluations"`
	Competences []Competence `json:"competences"`
}

// AppreciationID is the composite key the backend assigns to a stored
// appreciation.
type AppreciationID struct {
	PeriodeStagiaireID int `json:"periodeStagiaireId"`
	PeriodeStageID     int `json:"periodeStageId"`
	TuteurID           int `json:"tuteurId"`
}

// PeriodeRecord is the expanded periode the backend returns on reads.
type PeriodeRecord struct {
	DateDebut   string            `json:"date_debut"`
	DateFin     string            `json:"date_fin"`
	Stagiaire   catalog.Stagiaire `json:"stagiaire"`
	Stage       Stage             `json:"stage"`
	StagiaireID int               `json:"stagiaireId"`
	StageID     int               `json:"stageId"`
}

// AppreciationRecord is the nested read model returned by the list and
// detail endpoints.
type AppreciationRecord struct {
	ID          AppreciationID `json:"id"`
	Tuteur      catalog.Tuteur `json:"tuteur"`
	Periode     PeriodeRecord  `json:"periode"`
	Evaluations []Evaluation   `json:"evaluations"`
	Competences []Competence   `json:"competences"`
}
