package identity

import "github.com/philipp01105/sinklog/core"

// Field keys added by the enricher
const (
	KeyDeviceID        = "homeyId"
	KeyAppID           = "appId"
	KeyAppVersion      = "appVersion"
	KeyPlatform        = "platform"
	KeyPlatformVersion = "platformVersion"
)

// Enricher transforms a record before it is handed to a transport
type Enricher func(core.Record) core.Record

// NewEnricher returns an Enricher that adds the non-empty fields of id to
// every record. The input record's field map is never modified.
func NewEnricher(id Identity) Enricher {
	fields := id.Fields()
	return func(r core.Record) core.Record {
		return r.WithFields(fields)
	}
}

// Fields returns the non-empty identity values keyed by their field names
func (id Identity) Fields() map[string]any {
	fields := make(map[string]any, 5)
	add := func(key, val string) {
		if val != "" {
			fields[key] = val
		}
	}
	add(KeyDeviceID, id.DeviceID)
	add(KeyAppID, id.AppID)
	add(KeyAppVersion, id.AppVersion)
	add(KeyPlatform, id.Platform)
	add(KeyPlatformVersion, id.PlatformVersion)
	return fields
}
