package admin

type CreateAdminRequest struct {
	Email     string `form:"email" binding:"required,email"`
	Password  string `form:"password" binding:"required,min=8"`
	Nom       string `form:"nom" binding:"required"`
	Prenom    string `form:"prenom" binding:"required"`
	Telephone string `form:"telephone"`
}
