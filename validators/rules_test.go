package validators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelolof/fieldrules/validators"
)

func TestBuiltinPredicates(t *testing.T) {
	tests := []struct {
		rule  string
		param string
		value string
		want  bool
	}{
		{"alpha-numeric", "", "abc123", true},
		{"alpha-numeric", "", "abc", false},
		{"alpha-numeric", "", "123", false},
		{"alpha-numeric", "", "abc-123", false},
		{"alpha-numeric", "", "é1", false},

		{"email", "", "test@example.com", true},
		{"email", "", "test@example", false},
		{"email", "", "test example@x.io", false},

		{"eq", "3", "abc", true},
		{"eq", "3", "abcd", false},
		{"eq", "2", "éé", true},

		{"float", "2", "12.50", true},
		{"float", "2", "12.5", false},
		{"float", "2", "12", false},
		{"float", "2", "a2.50", false},
		{"float", "0", "12.", true},

		{"gt", "5", "6", true},
		{"gt", "5", "5", false},
		{"gt", "5", "abc", false},
		{"gt", "5", "0x1p4", false},
		{"gt", "5", "1e3", false},
		{"lt", "5", "4.5", true},
		{"lt", "5", "5", false},
		{"lt", "-1", "-2", true},

		{"has-int", "", "abc1", true},
		{"has-int", "", "abc", false},

		{"in", "red,green,blue", "green", true},
		{"in", "red, green", "green", true},
		{"in", "red,green", "gre", false},

		{"lower", "", "ABc", true},
		{"lower", "", "ABC", false},
		{"upper", "", "abC", true},
		{"upper", "", "abc", false},
		{"upper", "", "É", false},
		{"lower", "", "é", false},
		{"mixedCase", "", "Éé", false},
		{"mixedCase", "", "aB", true},
		{"mixedCase", "", "ab", false},

		{"match", "secret", "secret", true},
		{"match", "Password|secret", "secret", true},
		{"match", "Password|other", "secret", false},
		{"match", "Password|secret", "Password|secret", false},

		{"max", "3", "abc", true},
		{"max", "3", "abcd", false},
		{"min", "3", "abc", true},
		{"min", "3", "ab", false},

		{"numeric", "", "0123", true},
		{"numeric", "", "12.3", false},

		{"phone", "", "+12345678901", true},
		{"phone", "", "+1234567890", false},
		{"phone", "", "12345678901", false},

		{"required", "", "x", true},
		{"required", "", "  ", false},
		{"required", "", "", false},

		{"symbol", "", "pa$$", true},
		{"symbol", "", "pass", false},

		{"uuid", "", "123e4567-e89b-12d3-a456-426614174000", true},
		{"uuid", "", "123E4567-E89B-12D3-A456-426614174000", true},
		{"uuid", "", "123e4567e89b12d3a456426614174000", false},
		{"uuid", "", "urn:uuid:123e4567-e89b-12d3-a456-426614174000", false},

		{"urn", "", "urn:isbn:0451450523", true},
		{"urn", "", "isbn:0451450523", false},

		{"url", "", "https://example.com/path", true},
		{"url", "", "example.com", false},

		{"ip", "", "127.0.0.1", true},
		{"ip", "", "::1", true},
		{"ip", "", "300.1.1.1", false},

		{"cidr", "", "10.0.0.0/8", true},
		{"cidr", "", "2001:db8::/32", true},
		{"cidr", "", "10.0.0.0", false},
		{"cidrv4", "", "10.0.0.0/8", true},
		{"cidrv4", "", "10.0.0.1/8", false},
		{"cidrv4", "", "2001:db8::/32", false},
		{"cidrv6", "", "2001:db8::/32", true},
		{"cidrv6", "", "10.0.0.0/8", false},

		{"ipv4", "", "192.168.0.1", true},
		{"ipv4", "", "::1", false},
		{"ipv6", "", "::1", true},
		{"ipv6", "", "192.168.0.1", false},

		{"mac", "", "00:1a:2b:3c:4d:5e", true},
		{"mac", "", "00-1A-2B-3C-4D-5E", true},
		{"mac", "", "00:1a:2b", false},

		{"fqdn", "", "api.example.com", true},
		{"fqdn", "", "example.com.", true},
		{"fqdn", "", "localhost", false},
		{"hostname", "", "web-01", true},
		{"hostname", "", "1web", false},
		{"hostname_rfc1123", "", "1web", true},
		{"hostname_rfc1123", "", "web_01", false},
		{"hostname_port", "", "example.com:8080", true},
		{"hostname_port", "", ":443", true},
		{"hostname_port", "", "example.com:0", false},
		{"hostname_port", "", "example.com:70000", false},
		{"hostname_port", "", "example.com", false},

		{"uri", "", "/path?q=1", true},
		{"uri", "", "mailto:me@example.com", true},
		{"uri", "", "relative/path", false},
		{"http_url", "", "https://example.com", true},
		{"http_url", "", "HTTP://EXAMPLE.COM/a", true},
		{"http_url", "", "ftp://example.com", false},
		{"fileUrl", "", "file:///etc/hosts", true},
		{"fileUrl", "", "https://example.com", false},
		{"url_encoded", "", "a%20b%2Fc", true},
		{"url_encoded", "", "a%2", false},
		{"url_encoded", "", "100%", false},
		{"datauri", "", "data:text/plain;base64,SGVsbG8=", true},
		{"datauri", "", "data:text/plain;base64,not base64", false},
		{"datauri", "", "text/plain,SGVsbG8=", false},

		{"not_empty", "", " ", true},
		{"not_empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.rule+"/"+tt.value, func(t *testing.T) {
			v, err := validators.Default.Lookup(tt.rule)
			require.NoError(t, err)

			ok, err := v.Check(tt.value, tt.param)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestNumericParams(t *testing.T) {
	for _, rule := range []string{"eq", "float", "gt", "lt", "max", "min"} {
		t.Run(rule, func(t *testing.T) {
			v, err := validators.Default.Lookup(rule)
			require.NoError(t, err)

			_, err = v.Check("abc", "abc")
			require.Error(t, err)
			assert.ErrorIs(t, err, validators.ErrInvalidParam)

			_, err = v.Check("abc", "")
			assert.ErrorIs(t, err, validators.ErrInvalidParam)
		})
	}

	t.Run("count rules reject fractions", func(t *testing.T) {
		v, err := validators.Default.Lookup("max")
		require.NoError(t, err)
		_, err = v.Check("abc", "2.5")
		assert.ErrorIs(t, err, validators.ErrInvalidParam)
	})

	t.Run("number rules reject exponent params", func(t *testing.T) {
		v, err := validators.Default.Lookup("lt")
		require.NoError(t, err)
		_, err = v.Check("1", "1e3")
		assert.ErrorIs(t, err, validators.ErrInvalidParam)
	})

	t.Run("number rules accept fractions", func(t *testing.T) {
		v, err := validators.Default.Lookup("gt")
		require.NoError(t, err)
		ok, err := v.Check("2.6", "2.5")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestDefaultMessages(t *testing.T) {
	tests := []struct {
		rule  string
		param string
		want  string
	}{
		{"min", "5", "Field should be 5 or more characters"},
		{"max", "3", "Field should be 3 or less characters"},
		{"eq", "4", "Field should be exactly 4 characters"},
		{"gt", "10", "Field should be greater than 10"},
		{"in", "a, b,c", "Field should be one of: a, b, c"},
		{"match", "Password|secret", "Field should match Password"},
		{"match", "secret", "Field should match secret"},
		{"required", "", "Field is required"},
		{"ipv4", "", "Field should be a valid IPv4 address"},
		{"http_url", "", "Field should be a valid http or https URL"},
		{"not_empty", "", "Field should not be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.rule, func(t *testing.T) {
			v, err := validators.Default.Lookup(tt.rule)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.DefaultMessage(tt.param))
		})
	}
}
