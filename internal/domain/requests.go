package domain

import "github.com/google/uuid"

// Request payloads. Dates are plain YYYY-MM-DD strings, billing periods
// YYYY-MM.

type RegisterRequest struct {
	Name     string   `json:"name" validate:"required,max=200"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=8,max=72"`
	Role     UserRole `json:"role,omitempty" validate:"omitempty,oneof=admin manager user"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateCustomerRequest struct {
	Type               CustomerType `json:"type,omitempty" validate:"omitempty,oneof=individual corporate"`
	CompanyName        string       `json:"company_name,omitempty" validate:"max=200"`
	ContactName        string       `json:"contact_name,omitempty" validate:"max=200"`
	Email              string       `json:"email,omitempty" validate:"omitempty,email"`
	Phone              string       `json:"phone,omitempty" validate:"max=50"`
	PostalCode         string       `json:"postal_code,omitempty" validate:"max=20"`
	Address            string       `json:"address,omitempty" validate:"max=500"`
	BillingPostalCode  string       `json:"billing_postal_code,omitempty" validate:"max=20"`
	BillingAddress     string       `json:"billing_address,omitempty" validate:"max=500"`
	BillingContactName string       `json:"billing_contact_name,omitempty" validate:"max=200"`
	Notes              string       `json:"notes,omitempty"`
}

// UpdateCustomerRequest carries the same shape as create
type UpdateCustomerRequest = CreateCustomerRequest

// PowerPlantSpecInput is the nested equipment payload on project requests
type PowerPlantSpecInput struct {
	PanelKW           float64 `json:"panel_kw,omitempty" validate:"gte=0"`
	PanelCount        int     `json:"panel_count,omitempty" validate:"gte=0"`
	PanelManufacturer string  `json:"panel_manufacturer,omitempty" validate:"max=200"`
	PanelModel        string  `json:"panel_model,omitempty" validate:"max=200"`
	PcsKW             float64 `json:"pcs_kw,omitempty" validate:"gte=0"`
	PcsCount          int     `json:"pcs_count,omitempty" validate:"gte=0"`
	PcsManufacturer   string  `json:"pcs_manufacturer,omitempty" validate:"max=200"`
	PcsModel          string  `json:"pcs_model,omitempty" validate:"max=200"`
}

// RegulatoryInfoInput is the nested certification payload on project requests
type RegulatoryInfoInput struct {
	MetiID                 string  `json:"meti_id,omitempty" validate:"max=100"`
	MetiCertificationDate  string  `json:"meti_certification_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	FitRate                float64 `json:"fit_rate,omitempty" validate:"gte=0"`
	SupplyStartDate        string  `json:"supply_start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PowerReceptionID       string  `json:"power_reception_id,omitempty" validate:"max=100"`
	RemoteMonitoringStatus string  `json:"remote_monitoring_status,omitempty" validate:"max=100"`
	Is4GCompatible         bool    `json:"is_4g_compatible,omitempty"`
	MonitoringCredentials  string  `json:"monitoring_credentials,omitempty"`
}

type CreateProjectRequest struct {
	CustomerID     uuid.UUID            `json:"customer_id" validate:"required"`
	ProjectNumber  string               `json:"project_number,omitempty" validate:"max=50"`
	ProjectName    string               `json:"project_name" validate:"required,max=200"`
	Status         ProjectStatus        `json:"status,omitempty" validate:"omitempty,oneof=planning construction operating suspended closed"`
	SitePostalCode string               `json:"site_postal_code,omitempty" validate:"max=20"`
	SiteAddress    string               `json:"site_address,omitempty" validate:"max=500"`
	MapCoordinates string               `json:"map_coordinates,omitempty" validate:"max=100"`
	KeyNumber      string               `json:"key_number,omitempty" validate:"max=100"`
	PowerPlantSpec *PowerPlantSpecInput `json:"power_plant_spec,omitempty"`
	RegulatoryInfo *RegulatoryInfoInput `json:"regulatory_info,omitempty"`
}

// UpdateProjectRequest carries the same shape as create; nested satellite
// payloads are upserted when present.
type UpdateProjectRequest = CreateProjectRequest

type CreateContractRequest struct {
	ProjectID            uuid.UUID `json:"project_id" validate:"required"`
	ContractType         string    `json:"contract_type,omitempty" validate:"max=100"`
	BusinessOwner        string    `json:"business_owner,omitempty" validate:"max=200"`
	Contractor           string    `json:"contractor,omitempty" validate:"max=200"`
	Subcontractor        string    `json:"subcontractor,omitempty" validate:"max=200"`
	AnnualMaintenanceFee float64   `json:"annual_maintenance_fee,omitempty" validate:"gte=0"`
	LandRent             float64   `json:"land_rent,omitempty" validate:"gte=0"`
	CommunicationFee     float64   `json:"communication_fee,omitempty" validate:"gte=0"`
	StartDate            string    `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate              string    `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes                string    `json:"notes,omitempty"`
}

type UpdateContractRequest = CreateContractRequest

type CreateInvoiceRequest struct {
	BillingPeriod string        `json:"billing_period" validate:"required,datetime=2006-01"`
	Amount        float64       `json:"amount" validate:"gte=0"`
	Status        InvoiceStatus `json:"status,omitempty" validate:"omitempty,oneof=unbilled billed paid"`
	DueDate       string        `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes         string        `json:"notes,omitempty"`
}

type UpdateInvoiceRequest = CreateInvoiceRequest

// UpdateInvoiceStatusRequest changes only the billing status. PaidAt is
// honored when the new status is paid; when omitted the server stamps now.
type UpdateInvoiceStatusRequest struct {
	Status InvoiceStatus `json:"status" validate:"required,oneof=unbilled billed paid"`
	PaidAt *string       `json:"paid_at,omitempty"`
}

type CreateMaintenanceRequest struct {
	ProjectID      uuid.UUID         `json:"project_id" validate:"required"`
	InquiryDate    string            `json:"inquiry_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	OccurrenceDate string            `json:"occurrence_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	WorkType       string            `json:"work_type,omitempty" validate:"max=100"`
	TargetArea     string            `json:"target_area,omitempty" validate:"max=200"`
	Situation      string            `json:"situation,omitempty"`
	Response       string            `json:"response,omitempty"`
	Report         string            `json:"report,omitempty"`
	Status         MaintenanceStatus `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed"`
	PhotoURL       string            `json:"photo_url,omitempty" validate:"max=500"`
}

type UpdateMaintenanceRequest = CreateMaintenanceRequest
