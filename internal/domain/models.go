package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// BeforeCreate assigns an ID when none is set. IDs are generated
// application-side so the same models work on both postgres and sqlite.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// CustomerType represents the legal form of a customer
type CustomerType string

const (
	CustomerTypeIndividual CustomerType = "individual"
	CustomerTypeCorporate  CustomerType = "corporate"
)

// Customer represents a power plant owner the company manages assets for
type Customer struct {
	BaseModel
	Type               CustomerType `gorm:"type:varchar(50);not null;default:'individual';index"`
	CompanyName        string       `gorm:"type:varchar(200);index;column:company_name"`
	ContactName        string       `gorm:"type:varchar(200);column:contact_name"`
	Email              string       `gorm:"type:varchar(255)"`
	Phone              string       `gorm:"type:varchar(50)"`
	PostalCode         string       `gorm:"type:varchar(20);column:postal_code"`
	Address            string       `gorm:"type:varchar(500)"`
	BillingPostalCode  string       `gorm:"type:varchar(20);column:billing_postal_code"`
	BillingAddress     string       `gorm:"type:varchar(500);column:billing_address"`
	BillingContactName string       `gorm:"type:varchar(200);column:billing_contact_name"`
	Notes              string       `gorm:"type:text"`
	Projects           []Project    `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// DisplayName returns the name used when a single label is needed,
// preferring the company name for corporate customers.
func (c *Customer) DisplayName() string {
	if c.CompanyName != "" {
		return c.CompanyName
	}
	return c.ContactName
}

// ProjectStatus represents the lifecycle state of a project
type ProjectStatus string

const (
	ProjectStatusPlanning     ProjectStatus = "planning"
	ProjectStatusConstruction ProjectStatus = "construction"
	ProjectStatusOperating    ProjectStatus = "operating"
	ProjectStatusSuspended    ProjectStatus = "suspended"
	ProjectStatusClosed       ProjectStatus = "closed"
)

// Project represents a solar power plant site
type Project struct {
	BaseModel
	CustomerID     uuid.UUID       `gorm:"type:uuid;not null;index;column:customer_id"`
	Customer       *Customer       `gorm:"foreignKey:CustomerID"`
	ProjectNumber  string          `gorm:"type:varchar(50);index;column:project_number"`
	ProjectName    string          `gorm:"type:varchar(200);not null;index;column:project_name"`
	Status         ProjectStatus   `gorm:"type:varchar(50);not null;default:'operating';index"`
	SitePostalCode string          `gorm:"type:varchar(20);column:site_postal_code"`
	SiteAddress    string          `gorm:"type:varchar(500);column:site_address"`
	MapCoordinates string          `gorm:"type:varchar(100);column:map_coordinates"`
	KeyNumber      string          `gorm:"type:varchar(100);column:key_number"`
	PowerPlantSpec *PowerPlantSpec `gorm:"foreignKey:ProjectID"`
	RegulatoryInfo *RegulatoryInfo `gorm:"foreignKey:ProjectID"`
	Contracts      []Contract      `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// PowerPlantSpec holds the equipment data for a project.
// At most one row exists per project.
type PowerPlantSpec struct {
	BaseModel
	ProjectID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:project_id"`
	PanelKW           float64   `gorm:"type:decimal(10,2);column:panel_kw"`
	PanelCount        int       `gorm:"column:panel_count"`
	PanelManufacturer string    `gorm:"type:varchar(200);column:panel_manufacturer"`
	PanelModel        string    `gorm:"type:varchar(200);column:panel_model"`
	PcsKW             float64   `gorm:"type:decimal(10,2);column:pcs_kw"`
	PcsCount          int       `gorm:"column:pcs_count"`
	PcsManufacturer   string    `gorm:"type:varchar(200);column:pcs_manufacturer"`
	PcsModel          string    `gorm:"type:varchar(200);column:pcs_model"`
}

// RegulatoryInfo holds the certification and grid data for a project.
// At most one row exists per project.
type RegulatoryInfo struct {
	BaseModel
	ProjectID               uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:project_id"`
	MetiID                  string    `gorm:"type:varchar(100);column:meti_id"`
	MetiCertificationDate   string    `gorm:"type:date;column:meti_certification_date"`
	FitRate                 float64   `gorm:"type:decimal(10,2);column:fit_rate"`
	SupplyStartDate         string    `gorm:"type:date;column:supply_start_date"`
	PowerReceptionID        string    `gorm:"type:varchar(100);column:power_reception_id"`
	RemoteMonitoringStatus  string    `gorm:"type:varchar(100);column:remote_monitoring_status"`
	Is4GCompatible          bool      `gorm:"not null;default:false;column:is_4g_compatible"`
	MonitoringCredentials   string    `gorm:"type:text;column:monitoring_credentials"`
}

// TableName overrides the default pluralization ("regulatory_infos")
func (RegulatoryInfo) TableName() string {
	return "regulatory_info"
}

// Contract represents a maintenance agreement for a project
type Contract struct {
	BaseModel
	ProjectID            uuid.UUID `gorm:"type:uuid;not null;index;column:project_id"`
	Project              *Project  `gorm:"foreignKey:ProjectID"`
	ContractType         string    `gorm:"type:varchar(100);column:contract_type"`
	BusinessOwner        string    `gorm:"type:varchar(200);column:business_owner"`
	Contractor           string    `gorm:"type:varchar(200)"`
	Subcontractor        string    `gorm:"type:varchar(200)"`
	AnnualMaintenanceFee float64   `gorm:"type:decimal(15,2);column:annual_maintenance_fee"`
	LandRent             float64   `gorm:"type:decimal(15,2);column:land_rent"`
	CommunicationFee     float64   `gorm:"type:decimal(15,2);column:communication_fee"`
	StartDate            string    `gorm:"type:date;column:start_date"`
	EndDate              string    `gorm:"type:date;column:end_date"`
	Notes                string    `gorm:"type:text"`
	Invoices             []Invoice `gorm:"foreignKey:ContractID;constraint:OnDelete:CASCADE"`
}

// InvoiceStatus represents the billing state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusUnbilled InvoiceStatus = "unbilled"
	InvoiceStatusBilled   InvoiceStatus = "billed"
	InvoiceStatusPaid     InvoiceStatus = "paid"
)

// IsValid checks if the InvoiceStatus is a valid enum value
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusUnbilled, InvoiceStatusBilled, InvoiceStatusPaid:
		return true
	}
	return false
}

// Invoice represents one billing period under a contract
type Invoice struct {
	BaseModel
	ContractID    uuid.UUID     `gorm:"type:uuid;not null;index;column:contract_id"`
	Contract      *Contract     `gorm:"foreignKey:ContractID"`
	BillingPeriod string        `gorm:"type:varchar(7);not null;index;column:billing_period"` // YYYY-MM
	Amount        float64       `gorm:"type:decimal(15,2);not null;default:0"`
	Status        InvoiceStatus `gorm:"type:varchar(50);not null;default:'unbilled';index"`
	DueDate       string        `gorm:"type:date;column:due_date"`
	PaidAt        *time.Time    `gorm:"column:paid_at"`
	Notes         string        `gorm:"type:text"`
}

// MaintenanceStatus represents the handling state of a maintenance log
type MaintenanceStatus string

const (
	MaintenanceStatusPending    MaintenanceStatus = "pending"
	MaintenanceStatusInProgress MaintenanceStatus = "in_progress"
	MaintenanceStatusCompleted  MaintenanceStatus = "completed"
)

// MaintenanceLog represents an inquiry or incident at a site
type MaintenanceLog struct {
	BaseModel
	ProjectID      uuid.UUID         `gorm:"type:uuid;not null;index;column:project_id"`
	Project        *Project          `gorm:"foreignKey:ProjectID"`
	UserID         *uuid.UUID        `gorm:"type:uuid;index;column:user_id"`
	User           *User             `gorm:"foreignKey:UserID"`
	InquiryDate    string            `gorm:"type:date;column:inquiry_date"`
	OccurrenceDate string            `gorm:"type:date;column:occurrence_date"`
	WorkType       string            `gorm:"type:varchar(100);column:work_type"`
	TargetArea     string            `gorm:"type:varchar(200);column:target_area"`
	Situation      string            `gorm:"type:text"`
	Response       string            `gorm:"type:text"`
	Report         string            `gorm:"type:text"`
	Status         MaintenanceStatus `gorm:"type:varchar(50);not null;default:'pending';index"`
	PhotoURL       string            `gorm:"type:varchar(500);column:photo_url"`
}

// UserRole represents the authorization level of a user
type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleManager UserRole = "manager"
	UserRoleUser    UserRole = "user"
)

// User represents an operator account
type User struct {
	BaseModel
	Name         string   `gorm:"type:varchar(200);not null"`
	Email        string   `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string   `gorm:"type:varchar(255);not null;column:password_hash"`
	Role         UserRole `gorm:"type:varchar(50);not null;default:'user'"`
}
