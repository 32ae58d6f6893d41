package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName    = "Go Greeter"
	AppBinary  = "go-greeter"
	AppID      = "com.github.tartampluch.go-greeter"
	ICalDomain = "gogreeter"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for log files.
	FilePermUserRW fs.FileMode = 0600
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagConfig    = "config"
	FlagDebug     = "debug"
	FlagLogFile   = "log-file"
	FlagLang      = "lang"
	FlagToday     = "today"
	FlagWindow    = "window"
	FlagUsers     = "users"
	FlagVCard     = "vcard"
	FlagFormat    = "format"
	FlagReminder  = "reminder"
	FlagUnit      = "unit"
	FlagDirection = "direction"
	FlagCountry   = "country-code"

	FlagDescConfig    = "Path to a YAML settings file"
	FlagDescDebug     = "Enable debug logging to stderr"
	FlagDescLogFile   = "Also write logs to this file"
	FlagDescLang      = "Output language (en, uk)"
	FlagDescToday     = "Override today's date (YYYY-MM-DD)"
	FlagDescWindow    = "Lookahead window in days"
	FlagDescUsers     = "YAML file with a list of {name, birthday}"
	FlagDescVCard     = "vCard file to read users from"
	FlagDescFormat    = "Output format: text, json or ics"
	FlagDescReminder  = "Add an alarm to ICS events, N units from the event (0 disables)"
	FlagDescUnit      = "Alarm unit: d, h or m"
	FlagDescDirection = "Alarm direction: before or after"
	FlagDescCountry   = "Country code prepended to local phone numbers"

	MsgVersionOutput = "%s version %s (commit %s, built %s, %s/%s)\n"
)

// Commands
const (
	CmdUseRoot      = AppBinary
	CmdUseDays      = "days DATE..."
	CmdUseTicket    = "ticket MIN MAX QUANTITY"
	CmdUsePhone     = "phone [NUMBER...]"
	CmdUseBirthdays = "birthdays"
	CmdUseDemo      = "demo"
	CmdUseVersion   = "version"

	CmdDescRoot      = "Birthday reminders, lottery tickets and phone cleanup"
	CmdDescDays      = "Print the number of days between each YYYY-MM-DD date and today"
	CmdDescTicket    = "Draw QUANTITY unique numbers between MIN and MAX"
	CmdDescPhone     = "Normalize phone numbers (arguments, or one per line on stdin)"
	CmdDescBirthdays = "List who to congratulate during the coming week"
	CmdDescDemo      = "Run every feature on built-in sample data"
	CmdDescVersion   = "Print version information"
)

// Output formats for the birthdays command.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatICS  = "ics"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultLanguage     = "en"
	DefaultWindowDays   = 7
	DefaultCountryCode  = "38"
	DefaultTicketMin    = 1
	DefaultTicketMax    = 1000
	DefaultLeapYear     = 2000 // Placeholder year for year-less dates like --02-29
	DefaultReminderUnit = UnitDays
	DefaultReminderDir  = DirBefore
	UIDSalt             = "go-greeter-v1-" // Salt for deterministic UID generation
	PhonePlus           = "+"

	// MaxConsecutiveCardErrors stops a vCard import whose reader keeps failing.
	MaxConsecutiveCardErrors = 32

	// MaxSourceSize caps the bytes read from a user list or vCard file (10 MB).
	MaxSourceSize = 10 * 1024 * 1024
)

// SupportedLanguages defines the list of available output languages (ISO 639-1).
var SupportedLanguages = []string{"en", "uk"}

// ISO8601 Duration Components for Reminders
const (
	ISOPeriodPrefix   = "P"
	ISONegativePrefix = "-P"
	ISOTimePrefix     = "T" // Hours and minutes live in the time part: PT2H
	ISODay            = "D"
	ISOHour           = "H"
	ISOMinute         = "M"
)

// Reminder Units & Directions
const (
	UnitDays    = "d"
	UnitHours   = "h"
	UnitMinutes = "m"
	DirBefore   = "before"
	DirAfter    = "after"
)

// -----------------------------------------------------------------------------
// Data Formats
// -----------------------------------------------------------------------------

const (
	// DateFormatISO is the layout accepted by the elapsed-days routine.
	DateFormatISO = "2006-01-02"
	// DateFormatDotted is the layout of birthdays in user lists and of
	// congratulation dates in text output.
	DateFormatDotted = "2006.01.02"

	// vCard BDAY layouts
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"

	// UID Generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"

	// Text output
	SectionRuleWidth = 10
	SectionRuleChar  = "-"
	JSONIndent       = "  "
	ListIndent       = "  "
	ColorTitle       = "#8BC34A"
	ColorError       = "#e53935"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	ICalVersion   = "2.0"
	ICalProdid    = "-//Go Greeter//Reminders//EN"
	ICalCalName   = "Congratulations"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"

	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"
	VCardN    = "N"

	// StubVCalendar is the minimal valid iCalendar object used when there is nothing to remind.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeySectionDays      = "section_days"
	TKeySectionTicket    = "section_ticket"
	TKeySectionPhones    = "section_phones"
	TKeySectionBirthdays = "section_birthdays"
	TKeyPhonesIntro      = "phones_intro"
	TKeyBirthdaysIntro   = "birthdays_intro"
	TKeyBirthdaysNone    = "birthdays_none"
	TKeyDaysResult       = "days_result" // Requires Date, Days
	TKeyErrorLine        = "error_line"  // Requires Error
	TKeyReminderLine     = "reminder_line"
	TKeyEvtSummary       = "event_summary" // Requires Name
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrDateParse         = "unable to parse date"
	ErrUserRecord        = "invalid user record"
	ErrVCardDecode       = "failed to decode vCard stream"
	ErrUsersDecode       = "failed to decode user list"
	ErrICalEncode        = "failed to encode iCalendar data"
	ErrMinOutOfRange     = "min must be greater than or equal to"
	ErrMaxOutOfRange     = "max must be less than or equal to"
	ErrEqualBounds       = "min must not be equal to max"
	ErrInvertedBounds    = "min must not be greater than max"
	ErrNegativeQuantity  = "quantity must not be negative"
	ErrQuantityTooLarge  = "can't draw unique numbers, quantity exceeds range size"
	ErrSettingsRead      = "failed to read settings file"
	ErrSettingsDecode    = "failed to decode settings file"
	ErrSettingsInvalid   = "invalid settings"
	ErrWindowNegative    = "window_days must not be negative"
	ErrCountryCode       = "phone.country_code must contain digits only"
	ErrTicketBounds      = "ticket bounds must satisfy 1 <= min < max"
	ErrLayoutEmpty       = "date formats must not be empty"
	ErrLanguage          = "unsupported language"
	ErrFormat            = "unsupported output format"
	ErrReminderUnit      = "unsupported reminder unit"
	ErrReminderDir       = "unsupported reminder direction"
	ErrSourceConflict    = "--users and --vcard are mutually exclusive"
	ErrOpenSource        = "failed to open user source"
	ErrNotRegular        = "not a regular file"
	ErrArgNotNumber      = "argument is not a whole number"
	ErrLogFile           = "failed to open log file"
	ErrAppFailed         = "command failed"
	ErrDaysFailed        = "one or more dates could not be parsed"
	ErrLocalesAccess     = "failed to access embedded locales"
	ErrLocaleLoad        = "failed to load locale file"
	ErrWriteOutput       = "failed to write output"
	ErrReadInput         = "failed to read input"
	ErrLocalizerNotReady = "localizer not initialized"
)

// -----------------------------------------------------------------------------
// Fallbacks
// -----------------------------------------------------------------------------

const (
	FallbackSummary = "Congratulate %s"
	FallbackName    = "Unknown"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Command finished"
	MsgSettingsLoad  = "Settings loaded"
	MsgSettingsNone  = "No settings file, using defaults"
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgSkippedDate   = "Skipping invalid date format"
	MsgSkippedName   = "Skipping vCard without a name"
	MsgUsersLoaded   = "Users loaded"
	MsgPlanned       = "Upcoming birthdays computed"
	MsgShifted       = "Congratulation moved off weekend"
	MsgTicketDrawn   = "Ticket drawn"
	MsgPhoneNorm     = "Phone normalized"
	MsgCalendarBuilt = "Calendar generation successful"
	MsgSourceOpen    = "Reading user source"
	MsgSourceTrunc   = "User source exceeds size limit, reading truncated"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyValue     = "value"
	LogKeyCount     = "count"
	LogKeyName      = "name"
	LogKeyDate      = "date"
	LogKeyFrom      = "from"
	LogKeyTo        = "to"
	LogKeyWindow    = "window_days"
	LogKeyToday     = "today"
	LogKeyMin       = "min"
	LogKeyMax       = "max"
	LogKeyQuantity  = "quantity"
	LogKeyCommand   = "command"
	LogKeyTotal     = "total_cards"
	LogKeyFound     = "birthdays_found"
	LogKeyStats     = "stats"
	LogKeyEvents    = "events"
	LogKeySize      = "size_bytes"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain     = "main"
	CompEngine   = "engine"
	CompCalendar = "calendar"
	CompVCard    = "vcard"
	CompLottery  = "lottery"
	CompPhone    = "phone"
	CompConfig   = "config"
	CompSource   = "source"
	CompI18n     = "i18n"
)
