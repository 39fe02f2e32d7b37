package validators

import (
	"fmt"
	"strings"

	"github.com/michaelolof/fieldrules/utils"
)

// ParamKind describes what a rule expects after the colon in "name:param".
type ParamKind uint8

const (
	NoParam ParamKind = iota
	TextParam
	NumberParam
	CountParam
)

func (k ParamKind) String() string {
	switch k {
	case NoParam:
		return "none"
	case TextParam:
		return "text"
	case NumberParam:
		return "number"
	case CountParam:
		return "count"
	default:
		return "unknown"
	}
}

type MessageFn = func(param string) string
type PredicateFn = func(value string, param string) bool

// Validator is one entry of a Registry. An empty param always means the rule
// was used without a parameter.
type Validator struct {
	Param    ParamKind
	Message  MessageFn
	Validate PredicateFn
}

// Rule names shipped with the package.
const (
	AlphaNumericRule = "alpha-numeric"
	EmailRule        = "email"
	EqRule           = "eq"
	FloatRule        = "float"
	GtRule           = "gt"
	LtRule           = "lt"
	HasIntRule       = "has-int"
	InRule           = "in"
	LowerRule        = "lower"
	UpperRule        = "upper"
	MatchRule        = "match"
	MaxRule          = "max"
	MinRule          = "min"
	MixedCaseRule    = "mixedCase"
	NumericRule      = "numeric"
	PhoneRule        = "phone"
	RequiredRule     = "required"
	SymbolRule       = "symbol"
	UUIDRule         = "uuid"
	URNRule          = "urn"
	URLRule          = "url"
	IPRule           = "ip"

	CIDRRule            = "cidr"
	CIDRv4Rule          = "cidrv4"
	CIDRv6Rule          = "cidrv6"
	IPv4Rule            = "ipv4"
	IPv6Rule            = "ipv6"
	MACRule             = "mac"
	FQDNRule            = "fqdn"
	HostnameRule        = "hostname"
	HostnameRFC1123Rule = "hostname_rfc1123"
	HostnamePortRule    = "hostname_port"
	URIRule             = "uri"
	HttpURLRule         = "http_url"
	FileURLRule         = "fileUrl"
	URLEncodedRule      = "url_encoded"
	DataURIRule         = "datauri"
	NotEmptyRule        = "not_empty"
)

var builtins = map[string]Validator{
	AlphaNumericRule: {Message: fixed("Field should contain both letters and numbers"), Validate: IsAlphaNumeric},
	EmailRule:        {Message: fixed("Field should be a valid email address"), Validate: IsEmail},
	EqRule:           {Param: CountParam, Message: withParam("Field should be exactly %s characters"), Validate: IsLength},
	FloatRule:        {Param: CountParam, Message: withParam("Field should be a number with %s decimal places"), Validate: IsFloat},
	GtRule:           {Param: NumberParam, Message: withParam("Field should be greater than %s"), Validate: IsGreater},
	LtRule:           {Param: NumberParam, Message: withParam("Field should be less than %s"), Validate: IsLess},
	HasIntRule:       {Message: fixed("Field should contain at least one number"), Validate: HasInt},
	InRule:           {Param: TextParam, Message: oneOfMessage, Validate: IsOneOf},
	LowerRule:        {Message: fixed("Field should contain at least one lowercase letter"), Validate: HasLower},
	UpperRule:        {Message: fixed("Field should contain at least one uppercase letter"), Validate: HasUpper},
	MatchRule:        {Param: TextParam, Message: matchMessage, Validate: IsMatch},
	MaxRule:          {Param: CountParam, Message: withParam("Field should be %s or less characters"), Validate: IsMaxLength},
	MinRule:          {Param: CountParam, Message: withParam("Field should be %s or more characters"), Validate: IsMinLength},
	MixedCaseRule:    {Message: fixed("Field should contain both uppercase and lowercase letters"), Validate: IsMixedCase},
	NumericRule:      {Message: fixed("Field should contain only numbers"), Validate: IsNumeric},
	PhoneRule:        {Message: fixed("Field should be a valid phone number"), Validate: IsPhone},
	RequiredRule:     {Message: fixed("Field is required"), Validate: IsRequired},
	SymbolRule:       {Message: fixed("Field should contain at least one special character"), Validate: HasSymbol},
	UUIDRule:         {Message: fixed("Field should be a valid UUID"), Validate: IsUUID},
	URNRule:          {Message: fixed("Field should be a valid URN"), Validate: IsUrnRFC2141},
	URLRule:          {Message: fixed("Field should be a valid URL"), Validate: IsURL},
	IPRule:           {Message: fixed("Field should be a valid IP address"), Validate: IsIP},

	CIDRRule:            {Message: fixed("Field should be a valid CIDR notation"), Validate: IsCIDR},
	CIDRv4Rule:          {Message: fixed("Field should be a valid IPv4 CIDR notation"), Validate: IsCIDRv4},
	CIDRv6Rule:          {Message: fixed("Field should be a valid IPv6 CIDR notation"), Validate: IsCIDRv6},
	IPv4Rule:            {Message: fixed("Field should be a valid IPv4 address"), Validate: IsIPv4},
	IPv6Rule:            {Message: fixed("Field should be a valid IPv6 address"), Validate: IsIPv6},
	MACRule:             {Message: fixed("Field should be a valid MAC address"), Validate: IsMAC},
	FQDNRule:            {Message: fixed("Field should be a fully qualified domain name"), Validate: IsFQDN},
	HostnameRule:        {Message: fixed("Field should be a valid hostname"), Validate: IsHostnameRFC952},
	HostnameRFC1123Rule: {Message: fixed("Field should be a valid hostname"), Validate: IsHostnameRFC1123},
	HostnamePortRule:    {Message: fixed("Field should be a valid host and port"), Validate: IsHostnamePort},
	URIRule:             {Message: fixed("Field should be a valid URI"), Validate: IsURI},
	HttpURLRule:         {Message: fixed("Field should be a valid http or https URL"), Validate: IsHttpURL},
	FileURLRule:         {Message: fixed("Field should be a valid file URL"), Validate: IsFileURL},
	URLEncodedRule:      {Message: fixed("Field should be URL encoded"), Validate: IsURLEncoded},
	DataURIRule:         {Message: fixed("Field should be a valid data URI"), Validate: IsDataURI},
	NotEmptyRule:        {Message: fixed("Field should not be empty"), Validate: IsNotEmpty},
}

// Default holds the built-in rules. It is built once and never mutated.
var Default = NewRegistry(builtins)

func fixed(msg string) MessageFn {
	return func(string) string { return msg }
}

func withParam(format string) MessageFn {
	return func(param string) string { return fmt.Sprintf(format, param) }
}

func oneOfMessage(param string) string {
	return "Field should be one of: " + strings.Join(utils.SplitList(param, ","), ", ")
}

// matchMessage names the other field: "Password|secret" reads as "Password".
func matchMessage(param string) string {
	label, _, _ := strings.Cut(param, "|")
	if label == "" {
		return "Field does not match"
	}
	return "Field should match " + label
}
