package models

// MessageResponse is the error envelope of every failed request.
type MessageResponse struct {
	Message string `json:"message"`
}

// OKResponse acknowledges operations that have nothing else to return.
type OKResponse struct {
	OK bool `json:"ok"`
}

// PostalAddress is the address resolved for a CEP.
type PostalAddress struct {
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	CEP        string `json:"cep"`
}

// AdminCheckResponse answers whether a username belongs to an admin.
type AdminCheckResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

// PasswordHintResponse carries the stored password hint, if any.
type PasswordHintResponse struct {
	Hint *string `json:"hint"`
}

// AdminContactResponse carries the contact phone of the first admin, if any.
type AdminContactResponse struct {
	WhatsApp *string `json:"whatsapp"`
}
