// Package timezone pins wall-clock handling to the hotel's configured zone (APP_TIMEZONE).
//
// Stay dates, night rates and bill timestamps are all calendar values at the property, so
// every parse and format in the services goes through this package instead of time.Local.
// An unknown or empty zone name falls back to UTC.
package timezone
