package validators

import (
	"net"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var (
	hostnameRegexRFC952  = regexp.MustCompile(`^[a-zA-Z]([a-zA-Z0-9\-]+[\.]?)*[a-zA-Z0-9]$`)
	hostnameRegexRFC1123 = regexp.MustCompile(`^([a-zA-Z0-9]{1}[a-zA-Z0-9-]{0,62}){1}(\.[a-zA-Z0-9]{1}[a-zA-Z0-9-]{0,62})*?$`)
	fqdnRegexRFC1123     = regexp.MustCompile(`^([a-zA-Z0-9]{1}[a-zA-Z0-9-]{0,62})(\.[a-zA-Z0-9]{1}[a-zA-Z0-9-]{0,62})*?(\.[a-zA-Z]{1}[a-zA-Z0-9]{0,62})\.?$`)
	dataURIRegex         = regexp.MustCompile(`^data:((?:\w+\/(?:([^;]|;[^;]).)+)?)`)
	base64Regex          = regexp.MustCompile(`^(?:[A-Za-z0-9+\/]{4})*(?:[A-Za-z0-9+\/]{2}==|[A-Za-z0-9+\/]{3}=|[A-Za-z0-9+\/]{4})$`)
	urlEncodedRegex      = regexp.MustCompile(`^(?:[^%]|%[0-9A-Fa-f]{2})*$`)
)

func IsCIDR(val, _ string) bool {
	_, _, err := net.ParseCIDR(val)
	return err == nil
}

// IsCIDRv4 also requires the address to be the network address, so
// "10.0.0.0/8" passes and "10.0.0.1/8" does not.
func IsCIDRv4(val, _ string) bool {
	ip, ipNet, err := net.ParseCIDR(val)
	if err != nil || ip.To4() == nil {
		return false
	}
	return ipNet.IP.Equal(ip)
}

func IsCIDRv6(val, _ string) bool {
	ip, _, err := net.ParseCIDR(val)
	return err == nil && ip.To4() == nil
}

func IsIPv4(val, _ string) bool {
	ip := net.ParseIP(val)
	return ip != nil && ip.To4() != nil
}

func IsIPv6(val, _ string) bool {
	ip := net.ParseIP(val)
	return ip != nil && ip.To4() == nil
}

// IsMAC accepts the IEEE 802 MAC-48, EUI-48, EUI-64 and 20-octet forms net.ParseMAC knows.
func IsMAC(val, _ string) bool {
	_, err := net.ParseMAC(val)
	return err == nil
}

func IsFQDN(val, _ string) bool {
	return fqdnRegexRFC1123.MatchString(val)
}

func IsHostnameRFC952(val, _ string) bool {
	return hostnameRegexRFC952.MatchString(val)
}

func IsHostnameRFC1123(val, _ string) bool {
	return hostnameRegexRFC1123.MatchString(val)
}

// IsHostnamePort checks a "host:port" pair. The host may be empty, the port
// must be between 1 and 65535.
func IsHostnamePort(val, _ string) bool {
	host, port, err := net.SplitHostPort(val)
	if err != nil {
		return false
	}
	if n, err := strconv.ParseInt(port, 10, 32); err != nil || n < 1 || n > 65535 {
		return false
	}
	return host == "" || hostnameRegexRFC1123.MatchString(host)
}

// IsURI accepts absolute URIs and absolute paths. A fragment is ignored.
func IsURI(val, _ string) bool {
	if i := strings.Index(val, "#"); i > -1 {
		val = val[:i]
	}
	if val == "" {
		return false
	}
	_, err := url.ParseRequestURI(val)
	return err == nil
}

func IsHttpURL(val, _ string) bool {
	if !IsURL(val, "") {
		return false
	}
	u, err := url.Parse(strings.ToLower(val))
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}

func IsFileURL(val, _ string) bool {
	s := strings.ToLower(val)
	if !strings.HasPrefix(s, "file:/") {
		return false
	}
	_, err := url.ParseRequestURI(s)
	return err == nil
}

func IsURLEncoded(val, _ string) bool {
	return urlEncodedRegex.MatchString(val)
}

// IsDataURI checks a "data:<mediatype>[;base64],<payload>" value with a
// base64 payload.
func IsDataURI(val, _ string) bool {
	meta, payload, ok := strings.Cut(val, ",")
	if !ok {
		return false
	}
	return dataURIRegex.MatchString(meta) && base64Regex.MatchString(payload)
}

// IsNotEmpty only rejects the empty string; whitespace counts as content.
func IsNotEmpty(val, _ string) bool {
	return val != ""
}
