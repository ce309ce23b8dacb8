package xsyslog

import "strconv"

// Severity is the backend severity enumeration, in syslog numerical order:
// lower values are more severe.
type Severity int

const (
	SeverityEmergency Severity = iota
	SeverityAlert
	SeverityCritical
	SeverityError
	SeverityWarning
	SeverityNotice
	SeverityInfo
	SeverityDebug
)

func (s Severity) String() string {
	switch s {
	case SeverityEmergency:
		return "emergency"
	case SeverityAlert:
		return "alert"
	case SeverityCritical:
		return "critical"
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityNotice:
		return "notice"
	case SeverityInfo:
		return "info"
	case SeverityDebug:
		return "debug"
	default:
		return "severity(" + strconv.Itoa(int(s)) + ")"
	}
}

// Facility is the backend routing category, independent of severity.
// Values follow the syslog facility numbering; 12 through 15 are reserved
// and rejected at construction.
type Facility int

const (
	FacilityKern Facility = iota
	FacilityUser
	FacilityMail
	FacilityDaemon
	FacilityAuth
	FacilitySyslog
	FacilityLPR
	FacilityNews
	FacilityUUCP
	FacilityCron
	FacilityAuthPriv
	FacilityFTP
)

const (
	FacilityLocal0 Facility = iota + 16
	FacilityLocal1
	FacilityLocal2
	FacilityLocal3
	FacilityLocal4
	FacilityLocal5
	FacilityLocal6
	FacilityLocal7
)

func (f Facility) valid() bool {
	return (f >= FacilityKern && f <= FacilityFTP) ||
		(f >= FacilityLocal0 && f <= FacilityLocal7)
}

func (f Facility) String() string {
	switch {
	case f >= FacilityLocal0 && f <= FacilityLocal7:
		return "local" + strconv.Itoa(int(f-FacilityLocal0))
	case f >= FacilityKern && f <= FacilityFTP:
		return [...]string{
			"kern", "user", "mail", "daemon", "auth", "syslog",
			"lpr", "news", "uucp", "cron", "authpriv", "ftp",
		}[f]
	default:
		return "facility(" + strconv.Itoa(int(f)) + ")"
	}
}
