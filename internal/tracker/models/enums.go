package models

import dErrors "vendortrack/pkg/domainerrors"

// VendorType categorizes the external party.
type VendorType string

const (
	VendorContractor VendorType = "contractor"
	VendorSoftware   VendorType = "software"
	VendorSupplier   VendorType = "supplier"
	VendorConsultant VendorType = "consultant"
	VendorOther      VendorType = "other"
)

func ParseVendorType(s string) (VendorType, error) {
	switch VendorType(s) {
	case VendorContractor, VendorSoftware, VendorSupplier, VendorConsultant, VendorOther:
		return VendorType(s), nil
	}
	return "", dErrors.New(dErrors.CodeValidation, "unknown vendor type: "+s)
}

// VendorStatus is the administrative state of a vendor, independent of its
// documents' expiration state.
type VendorStatus string

const (
	VendorActive   VendorStatus = "active"
	VendorInactive VendorStatus = "inactive"
)

func ParseVendorStatus(s string) (VendorStatus, error) {
	switch VendorStatus(s) {
	case VendorActive, VendorInactive:
		return VendorStatus(s), nil
	}
	return "", dErrors.New(dErrors.CodeValidation, "unknown vendor status: "+s)
}

// DocumentType categorizes the compliance artifact.
type DocumentType string

const (
	DocLicense     DocumentType = "license"
	DocInsurance   DocumentType = "insurance"
	DocW9          DocumentType = "w9"
	DocCertificate DocumentType = "certificate"
	DocContract    DocumentType = "contract"
	DocOther       DocumentType = "other"
)

func ParseDocumentType(s string) (DocumentType, error) {
	switch DocumentType(s) {
	case DocLicense, DocInsurance, DocW9, DocCertificate, DocContract, DocOther:
		return DocumentType(s), nil
	}
	return "", dErrors.New(dErrors.CodeValidation, "unknown document type: "+s)
}

// Channel is the delivery channel a reminder is scheduled for. Delivery
// itself is out of scope; the channel is recorded for whoever dispatches.
type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelSlack    Channel = "slack"
	ChannelWebhook  Channel = "webhook"
	ChannelCalendar Channel = "calendar"
)

func ParseChannel(s string) (Channel, error) {
	switch Channel(s) {
	case ChannelEmail, ChannelSlack, ChannelWebhook, ChannelCalendar:
		return Channel(s), nil
	}
	return "", dErrors.New(dErrors.CodeValidation, "unknown reminder channel: "+s)
}

// ReminderStatus tracks the lifecycle of a scheduled reminder. This service
// only ever creates them as scheduled; an external dispatcher would move them
// to sent or failed.
type ReminderStatus string

const (
	ReminderScheduled ReminderStatus = "scheduled"
	ReminderSent      ReminderStatus = "sent"
	ReminderFailed    ReminderStatus = "failed"
)

// Role gates nothing today beyond being recorded on the session.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)
