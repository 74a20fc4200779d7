package models

// Address groups the Brazilian postal address fields shared by clients and employees.
type Address struct {
	CEP          string `json:"cep"`
	Neighborhood string `json:"neighborhood"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	City         string `json:"city"`
	UF           string `json:"uf"`
}

// AddressUpdate is the partial form of [Address]. Nil fields are left untouched.
type AddressUpdate struct {
	CEP          *string `json:"cep,omitempty"`
	Neighborhood *string `json:"neighborhood,omitempty"`
	Street       *string `json:"street,omitempty"`
	Number       *string `json:"number,omitempty"`
	Complement   *string `json:"complement,omitempty"`
	City         *string `json:"city,omitempty"`
	UF           *string `json:"uf,omitempty"`
}

// Client is a customer contact record owned by a tenant.
// TaxID is unique within one owner when non-empty.
type Client struct {
	ID      string `json:"id"`
	OwnerID string `json:"ownerId"`
	Name    string `json:"name" validate:"required"`
	TaxID   string `json:"taxId"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address
}

// ClientUpdate is a partial client update. Nil fields are left untouched.
type ClientUpdate struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1"`
	TaxID *string `json:"taxId,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
	AddressUpdate
}

// Apply copies every non-nil field of u onto c.
func (u ClientUpdate) Apply(c *Client) {
	setString(&c.Name, u.Name)
	setString(&c.TaxID, u.TaxID)
	setString(&c.Phone, u.Phone)
	setString(&c.Email, u.Email)
	u.AddressUpdate.Apply(&c.Address)
}

// Apply copies every non-nil field of u onto a.
func (u AddressUpdate) Apply(a *Address) {
	setString(&a.CEP, u.CEP)
	setString(&a.Neighborhood, u.Neighborhood)
	setString(&a.Street, u.Street)
	setString(&a.Number, u.Number)
	setString(&a.Complement, u.Complement)
	setString(&a.City, u.City)
	setString(&a.UF, u.UF)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
