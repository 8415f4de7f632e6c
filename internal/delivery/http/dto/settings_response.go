package dto

type WeightsResponse struct {
	Skills     int `json:"skills"`
	Experience int `json:"experience"`
	Education  int `json:"education"`
}

type SettingsResponse struct {
	Weights           WeightsResponse     `json:"scoring_weights"`
	MinShortlistScore int                 `json:"min_shortlist_score"`
	Taxonomy          map[string][]string `json:"skill_synonyms"`
}
