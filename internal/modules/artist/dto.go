package artist

type CreateArtistRequest struct {
	Nom    string `form:"nom" binding:"required"`
	Prenom string `form:"prenom" binding:"required"`
	Bio    string `form:"bio"`
}

type UpdateArtistRequest struct {
	Nom    string `form:"nom"`
	Prenom string `form:"prenom"`
	Bio    string `form:"bio"`
}

type StatusRequest struct {
	Action string `json:"action" binding:"required"`
}

type ListQuery struct {
	Search          string `form:"search"`
	Statut          string `form:"statut"`
	IncludeInactive bool   `form:"include_inactive"`
	Limit           int    `form:"limit,default=50"`
	Offset          int    `form:"offset"`
}
