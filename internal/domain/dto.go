package domain

import (
	"github.com/google/uuid"
)

// DTOs for API responses. Field names are snake_case to match the
// frontend contract.

type CustomerDTO struct {
	ID                 uuid.UUID    `json:"id"`
	Type               CustomerType `json:"type"`
	CompanyName        string       `json:"company_name"`
	ContactName        string       `json:"contact_name"`
	Email              string       `json:"email"`
	Phone              string       `json:"phone"`
	PostalCode         string       `json:"postal_code"`
	Address            string       `json:"address"`
	BillingPostalCode  string       `json:"billing_postal_code"`
	BillingAddress     string       `json:"billing_address"`
	BillingContactName string       `json:"billing_contact_name"`
	Notes              string       `json:"notes"`
	CreatedAt          string       `json:"created_at"` // ISO 8601
	UpdatedAt          string       `json:"updated_at"` // ISO 8601
}

// CustomerWithProjectsDTO is the customer detail payload. Projects is
// always present, empty when the customer has none.
type CustomerWithProjectsDTO struct {
	CustomerDTO
	Projects []ProjectDTO `json:"projects"`
}

type ProjectDTO struct {
	ID             uuid.UUID     `json:"id"`
	CustomerID     uuid.UUID     `json:"customer_id"`
	ProjectNumber  string        `json:"project_number"`
	ProjectName    string        `json:"project_name"`
	Status         ProjectStatus `json:"status"`
	SitePostalCode string        `json:"site_postal_code"`
	SiteAddress    string        `json:"site_address"`
	MapCoordinates string        `json:"map_coordinates"`
	KeyNumber      string        `json:"key_number"`
	CompanyName    string        `json:"company_name,omitempty"`
	ContactName    string        `json:"contact_name,omitempty"`
	CreatedAt      string        `json:"created_at"`
	UpdatedAt      string        `json:"updated_at"`
}

// ProjectDetailDTO includes the satellite records. A satellite that does
// not exist serializes as null rather than an error.
type ProjectDetailDTO struct {
	ProjectDTO
	PowerPlantSpec *PowerPlantSpecDTO `json:"power_plant_spec"`
	RegulatoryInfo *RegulatoryInfoDTO `json:"regulatory_info"`
}

type PowerPlantSpecDTO struct {
	ID                uuid.UUID `json:"id"`
	ProjectID         uuid.UUID `json:"project_id"`
	PanelKW           float64   `json:"panel_kw"`
	PanelCount        int       `json:"panel_count"`
	PanelManufacturer string    `json:"panel_manufacturer"`
	PanelModel        string    `json:"panel_model"`
	PcsKW             float64   `json:"pcs_kw"`
	PcsCount          int       `json:"pcs_count"`
	PcsManufacturer   string    `json:"pcs_manufacturer"`
	PcsModel          string    `json:"pcs_model"`
}

type RegulatoryInfoDTO struct {
	ID                     uuid.UUID `json:"id"`
	ProjectID              uuid.UUID `json:"project_id"`
	MetiID                 string    `json:"meti_id"`
	MetiCertificationDate  string    `json:"meti_certification_date"`
	FitRate                float64   `json:"fit_rate"`
	SupplyStartDate        string    `json:"supply_start_date"`
	PowerReceptionID       string    `json:"power_reception_id"`
	RemoteMonitoringStatus string    `json:"remote_monitoring_status"`
	Is4GCompatible         bool      `json:"is_4g_compatible"`
	MonitoringCredentials  string    `json:"monitoring_credentials"`
}

type ContractDTO struct {
	ID                   uuid.UUID `json:"id"`
	ProjectID            uuid.UUID `json:"project_id"`
	ContractType         string    `json:"contract_type"`
	BusinessOwner        string    `json:"business_owner"`
	Contractor           string    `json:"contractor"`
	Subcontractor        string    `json:"subcontractor"`
	AnnualMaintenanceFee float64   `json:"annual_maintenance_fee"`
	LandRent             float64   `json:"land_rent"`
	CommunicationFee     float64   `json:"communication_fee"`
	StartDate            string    `json:"start_date"`
	EndDate              string    `json:"end_date"`
	Notes                string    `json:"notes"`
	CreatedAt            string    `json:"created_at"`
	UpdatedAt            string    `json:"updated_at"`
}

// ContractWithInvoicesDTO is the per-project contract payload, invoices
// ordered billing_period descending.
type ContractWithInvoicesDTO struct {
	ContractDTO
	Invoices []InvoiceDTO `json:"invoices"`
}

type InvoiceDTO struct {
	ID            uuid.UUID     `json:"id"`
	ContractID    uuid.UUID     `json:"contract_id"`
	BillingPeriod string        `json:"billing_period"`
	Amount        float64       `json:"amount"`
	Status        InvoiceStatus `json:"status"`
	DueDate       string        `json:"due_date"`
	PaidAt        *string       `json:"paid_at"`
	Notes         string        `json:"notes"`
	CreatedAt     string        `json:"created_at"`
	UpdatedAt     string        `json:"updated_at"`
}

// InvoiceWithProjectDTO is the flattened row for the all-invoices list
type InvoiceWithProjectDTO struct {
	InvoiceDTO
	ProjectID   uuid.UUID `json:"project_id"`
	ProjectName string    `json:"project_name"`
	CompanyName string    `json:"company_name"`
	ContactName string    `json:"contact_name"`
}

type MaintenanceLogDTO struct {
	ID             uuid.UUID         `json:"id"`
	ProjectID      uuid.UUID         `json:"project_id"`
	UserID         *uuid.UUID        `json:"user_id"`
	InquiryDate    string            `json:"inquiry_date"`
	OccurrenceDate string            `json:"occurrence_date"`
	WorkType       string            `json:"work_type"`
	TargetArea     string            `json:"target_area"`
	Situation      string            `json:"situation"`
	Response       string            `json:"response"`
	Report         string            `json:"report"`
	Status         MaintenanceStatus `json:"status"`
	PhotoURL       string            `json:"photo_url"`
	UserName       string            `json:"user_name,omitempty"`
	ProjectName    string            `json:"project_name,omitempty"`
	CompanyName    string            `json:"company_name,omitempty"`
	CreatedAt      string            `json:"created_at"`
	UpdatedAt      string            `json:"updated_at"`
}

type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	CreatedAt string    `json:"created_at"`
}

// AuthResponseDTO is returned by login
type AuthResponseDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// BillingSummaryItemDTO is one invoice in the monthly billing summary,
// flattened through contract, project and customer.
type BillingSummaryItemDTO struct {
	InvoiceID     uuid.UUID     `json:"invoice_id"`
	InvoiceStatus InvoiceStatus `json:"invoice_status"`
	Amount        float64       `json:"amount"`
	CustomerName  string        `json:"customer_name"`
	ProjectName   string        `json:"project_name"`
	ProjectID     uuid.UUID     `json:"project_id"`
	ContractID    uuid.UUID     `json:"contract_id"`
}

// BillingSummaryDTO is the dashboard billing response
type BillingSummaryDTO struct {
	Period string                  `json:"period"`
	Data   []BillingSummaryItemDTO `json:"data"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}
