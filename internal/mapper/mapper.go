package mapper

import (
	"time"

	"github.com/ageful/solar-ops-api/internal/domain"
)

const timeFormat = "2006-01-02T15:04:05Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeFormat)
}

func ToCustomerDTO(c *domain.Customer) domain.CustomerDTO {
	return domain.CustomerDTO{
		ID:                 c.ID,
		Type:               c.Type,
		CompanyName:        c.CompanyName,
		ContactName:        c.ContactName,
		Email:              c.Email,
		Phone:              c.Phone,
		PostalCode:         c.PostalCode,
		Address:            c.Address,
		BillingPostalCode:  c.BillingPostalCode,
		BillingAddress:     c.BillingAddress,
		BillingContactName: c.BillingContactName,
		Notes:              c.Notes,
		CreatedAt:          formatTime(c.CreatedAt),
		UpdatedAt:          formatTime(c.UpdatedAt),
	}
}

// ToCustomerWithProjectsDTO flattens a customer and its preloaded
// projects. Projects is never nil.
func ToCustomerWithProjectsDTO(c *domain.Customer) domain.CustomerWithProjectsDTO {
	projects := make([]domain.ProjectDTO, 0, len(c.Projects))
	for i := range c.Projects {
		projects = append(projects, ToProjectDTO(&c.Projects[i]))
	}
	return domain.CustomerWithProjectsDTO{
		CustomerDTO: ToCustomerDTO(c),
		Projects:    projects,
	}
}

// ToProjectDTO maps a project; customer names are included when the
// association is preloaded.
func ToProjectDTO(p *domain.Project) domain.ProjectDTO {
	dto := domain.ProjectDTO{
		ID:             p.ID,
		CustomerID:     p.CustomerID,
		ProjectNumber:  p.ProjectNumber,
		ProjectName:    p.ProjectName,
		Status:         p.Status,
		SitePostalCode: p.SitePostalCode,
		SiteAddress:    p.SiteAddress,
		MapCoordinates: p.MapCoordinates,
		KeyNumber:      p.KeyNumber,
		CreatedAt:      formatTime(p.CreatedAt),
		UpdatedAt:      formatTime(p.UpdatedAt),
	}
	if p.Customer != nil {
		dto.CompanyName = p.Customer.CompanyName
		dto.ContactName = p.Customer.ContactName
	}
	return dto
}

// ToProjectDetailDTO attaches satellites to a project. Nil satellites
// stay nil and serialize as JSON null.
func ToProjectDetailDTO(p *domain.Project, spec *domain.PowerPlantSpec, reg *domain.RegulatoryInfo) domain.ProjectDetailDTO {
	dto := domain.ProjectDetailDTO{
		ProjectDTO: ToProjectDTO(p),
	}
	if spec != nil {
		specDTO := ToPowerPlantSpecDTO(spec)
		dto.PowerPlantSpec = &specDTO
	}
	if reg != nil {
		regDTO := ToRegulatoryInfoDTO(reg)
		dto.RegulatoryInfo = &regDTO
	}
	return dto
}

func ToPowerPlantSpecDTO(s *domain.PowerPlantSpec) domain.PowerPlantSpecDTO {
	return domain.PowerPlantSpecDTO{
		ID:                s.ID,
		ProjectID:         s.ProjectID,
		PanelKW:           s.PanelKW,
		PanelCount:        s.PanelCount,
		PanelManufacturer: s.PanelManufacturer,
		PanelModel:        s.PanelModel,
		PcsKW:             s.PcsKW,
		PcsCount:          s.PcsCount,
		PcsManufacturer:   s.PcsManufacturer,
		PcsModel:          s.PcsModel,
	}
}

func ToRegulatoryInfoDTO(r *domain.RegulatoryInfo) domain.RegulatoryInfoDTO {
	return domain.RegulatoryInfoDTO{
		ID:                     r.ID,
		ProjectID:              r.ProjectID,
		MetiID:                 r.MetiID,
		MetiCertificationDate:  r.MetiCertificationDate,
		FitRate:                r.FitRate,
		SupplyStartDate:        r.SupplyStartDate,
		PowerReceptionID:       r.PowerReceptionID,
		RemoteMonitoringStatus: r.RemoteMonitoringStatus,
		Is4GCompatible:         r.Is4GCompatible,
		MonitoringCredentials:  r.MonitoringCredentials,
	}
}

func ToContractDTO(c *domain.Contract) domain.ContractDTO {
	return domain.ContractDTO{
		ID:                   c.ID,
		ProjectID:            c.ProjectID,
		ContractType:         c.ContractType,
		BusinessOwner:        c.BusinessOwner,
		Contractor:           c.Contractor,
		Subcontractor:        c.Subcontractor,
		AnnualMaintenanceFee: c.AnnualMaintenanceFee,
		LandRent:             c.LandRent,
		CommunicationFee:     c.CommunicationFee,
		StartDate:            c.StartDate,
		EndDate:              c.EndDate,
		Notes:                c.Notes,
		CreatedAt:            formatTime(c.CreatedAt),
		UpdatedAt:            formatTime(c.UpdatedAt),
	}
}

// ToContractWithInvoicesDTO flattens a contract and its preloaded
// invoices. Invoices is never nil.
func ToContractWithInvoicesDTO(c *domain.Contract) domain.ContractWithInvoicesDTO {
	invoices := make([]domain.InvoiceDTO, 0, len(c.Invoices))
	for i := range c.Invoices {
		invoices = append(invoices, ToInvoiceDTO(&c.Invoices[i]))
	}
	return domain.ContractWithInvoicesDTO{
		ContractDTO: ToContractDTO(c),
		Invoices:    invoices,
	}
}

func ToInvoiceDTO(inv *domain.Invoice) domain.InvoiceDTO {
	dto := domain.InvoiceDTO{
		ID:            inv.ID,
		ContractID:    inv.ContractID,
		BillingPeriod: inv.BillingPeriod,
		Amount:        inv.Amount,
		Status:        inv.Status,
		DueDate:       inv.DueDate,
		Notes:         inv.Notes,
		CreatedAt:     formatTime(inv.CreatedAt),
		UpdatedAt:     formatTime(inv.UpdatedAt),
	}
	if inv.PaidAt != nil {
		paidAt := formatTime(*inv.PaidAt)
		dto.PaidAt = &paidAt
	}
	return dto
}

// ToInvoiceWithProjectDTO flattens an invoice through its preloaded
// contract, project and customer.
func ToInvoiceWithProjectDTO(inv *domain.Invoice) domain.InvoiceWithProjectDTO {
	dto := domain.InvoiceWithProjectDTO{
		InvoiceDTO: ToInvoiceDTO(inv),
	}
	if inv.Contract != nil && inv.Contract.Project != nil {
		project := inv.Contract.Project
		dto.ProjectID = project.ID
		dto.ProjectName = project.ProjectName
		if project.Customer != nil {
			dto.CompanyName = project.Customer.CompanyName
			dto.ContactName = project.Customer.ContactName
		}
	}
	return dto
}

// ToBillingSummaryItemDTO flattens an invoice for the dashboard. The
// customer name prefers the company name and falls back to the contact.
func ToBillingSummaryItemDTO(inv *domain.Invoice) domain.BillingSummaryItemDTO {
	item := domain.BillingSummaryItemDTO{
		InvoiceID:     inv.ID,
		InvoiceStatus: inv.Status,
		Amount:        inv.Amount,
		ContractID:    inv.ContractID,
	}
	if inv.Contract != nil && inv.Contract.Project != nil {
		project := inv.Contract.Project
		item.ProjectID = project.ID
		item.ProjectName = project.ProjectName
		if project.Customer != nil {
			item.CustomerName = project.Customer.DisplayName()
		}
	}
	return item
}

// ToMaintenanceLogDTO maps a log; reporter and project names are
// included when the associations are preloaded.
func ToMaintenanceLogDTO(m *domain.MaintenanceLog) domain.MaintenanceLogDTO {
	dto := domain.MaintenanceLogDTO{
		ID:             m.ID,
		ProjectID:      m.ProjectID,
		UserID:         m.UserID,
		InquiryDate:    m.InquiryDate,
		OccurrenceDate: m.OccurrenceDate,
		WorkType:       m.WorkType,
		TargetArea:     m.TargetArea,
		Situation:      m.Situation,
		Response:       m.Response,
		Report:         m.Report,
		Status:         m.Status,
		PhotoURL:       m.PhotoURL,
		CreatedAt:      formatTime(m.CreatedAt),
		UpdatedAt:      formatTime(m.UpdatedAt),
	}
	if m.User != nil {
		dto.UserName = m.User.Name
	}
	if m.Project != nil {
		dto.ProjectName = m.Project.ProjectName
		if m.Project.Customer != nil {
			dto.CompanyName = m.Project.Customer.CompanyName
		}
	}
	return dto
}

func ToUserDTO(u *domain.User) domain.UserDTO {
	return domain.UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: formatTime(u.CreatedAt),
	}
}
