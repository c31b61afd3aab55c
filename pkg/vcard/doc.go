// Package vcard builds the vCard 3.0 payload encoded into contact QR codes.
//
// A Contact is either the built-in sample card, constructed in code, or
// read from a YAML file:
//
//	first_name: Jane
//	last_name: Doe
//	org: Example Inc.
//	title: CTO
//	phone: "+1 555 0100"
//	phone_types: [WORK, voice]
//	email: jane@example.com
//	url: https://www.linkedin.com/in/janedoe
//	url_label: LinkedIn
//
// Encode emits the card with "\n" line breaks. Empty optional properties
// are omitted, text values are escaped and normalized to Unicode NFC so
// the same contact always yields the same QR payload.
package vcard
