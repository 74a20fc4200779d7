package models

// Employee is a seller. LinkedUserID points to the companion login generated
// when the employee was created.
type Employee struct {
	ID                    string  `json:"id"`
	OwnerID               string  `json:"ownerId"`
	Name                  string  `json:"name" validate:"required"`
	CommissionRatePercent float64 `json:"commissionRatePercent" validate:"gte=0,lte=100"`
	TaxID                 string  `json:"taxId"`
	Phone                 string  `json:"phone"`
	Email                 string  `json:"email"`
	Address
	LinkedUserID *string `json:"linkedUserId"`
}

// EmployeeUpdate is a partial employee update. The link to the companion user
// is not editable.
type EmployeeUpdate struct {
	Name                  *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	CommissionRatePercent *float64 `json:"commissionRatePercent,omitempty" validate:"omitempty,gte=0,lte=100"`
	TaxID                 *string  `json:"taxId,omitempty"`
	Phone                 *string  `json:"phone,omitempty"`
	Email                 *string  `json:"email,omitempty"`
	AddressUpdate
}

// Apply copies every non-nil field of u onto e.
func (u EmployeeUpdate) Apply(e *Employee) {
	setString(&e.Name, u.Name)
	setFloat(&e.CommissionRatePercent, u.CommissionRatePercent)
	setString(&e.TaxID, u.TaxID)
	setString(&e.Phone, u.Phone)
	setString(&e.Email, u.Email)
	u.AddressUpdate.Apply(&e.Address)
}

// CreatedEmployee is the one-time response of an employee creation: the stored
// employee plus the generated login credentials, which are never persisted in
// plaintext.
type CreatedEmployee struct {
	Employee
	GeneratedUsername string `json:"generatedUsername"`
	GeneratedPassword string `json:"generatedPassword"`
}
