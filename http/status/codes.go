package status

/*
INFO: constant names follow net/http/status.go in order to avoid unwanted name
collisions between superhttp/http and net/http. Reason phrases, however, are
derived from the names in the table below rather than taken from the RFCs.
*/

import (
	"strconv"
	"strings"
	"unicode"
)

type Code uint16

// HTTP status codes as registered with IANA.
// See: https://www.iana.org/assignments/http-status-codes/http-status-codes.xhtml
const (
	Continue           Code = 100 // RFC 9110, 15.2.1
	SwitchingProtocols Code = 101 // RFC 9110, 15.2.2
	Processing         Code = 102 // RFC 2518, 10.1
	EarlyHints         Code = 103 // RFC 8297

	OK                   Code = 200 // RFC 9110, 15.3.1
	Created              Code = 201 // RFC 9110, 15.3.2
	Accepted             Code = 202 // RFC 9110, 15.3.3
	NonAuthoritativeInfo Code = 203 // RFC 9110, 15.3.4
	NoContent            Code = 204 // RFC 9110, 15.3.5
	ResetContent         Code = 205 // RFC 9110, 15.3.6
	PartialContent       Code = 206 // RFC 9110, 15.3.7
	MultiStatus          Code = 207 // RFC 4918, 11.1
	AlreadyReported      Code = 208 // RFC 5842, 7.1
	IMUsed               Code = 226 // RFC 3229, 10.4.1

	MultipleChoices   Code = 300 // RFC 9110, 15.4.1
	MovedPermanently  Code = 301 // RFC 9110, 15.4.2
	Found             Code = 302 // RFC 9110, 15.4.3
	SeeOther          Code = 303 // RFC 9110, 15.4.4
	NotModified       Code = 304 // RFC 9110, 15.4.5
	UseProxy          Code = 305 // RFC 9110, 15.4.6
	_                 Code = 306 // RFC 9110, 15.4.7 (Unused)
	TemporaryRedirect Code = 307 // RFC 9110, 15.4.8
	PermanentRedirect Code = 308 // RFC 9110, 15.4.9

	BadRequest                   Code = 400 // RFC 9110, 15.5.1
	Unauthorized                 Code = 401 // RFC 9110, 15.5.2
	PaymentRequired              Code = 402 // RFC 9110, 15.5.3
	Forbidden                    Code = 403 // RFC 9110, 15.5.4
	NotFound                     Code = 404 // RFC 9110, 15.5.5
	MethodNotAllowed             Code = 405 // RFC 9110, 15.5.6
	NotAcceptable                Code = 406 // RFC 9110, 15.5.7
	ProxyAuthRequired            Code = 407 // RFC 9110, 15.5.8
	RequestTimeout               Code = 408 // RFC 9110, 15.5.9
	Conflict                     Code = 409 // RFC 9110, 15.5.10
	Gone                         Code = 410 // RFC 9110, 15.5.11
	LengthRequired               Code = 411 // RFC 9110, 15.5.12
	PreconditionFailed           Code = 412 // RFC 9110, 15.5.13
	RequestEntityTooLarge        Code = 413 // RFC 9110, 15.5.14
	RequestURITooLong            Code = 414 // RFC 9110, 15.5.15
	UnsupportedMediaType         Code = 415 // RFC 9110, 15.5.16
	RequestedRangeNotSatisfiable Code = 416 // RFC 9110, 15.5.17
	ExpectationFailed            Code = 417 // RFC 9110, 15.5.18
	Teapot                       Code = 418 // RFC 9110, 15.5.19 (Unused)
	MisdirectedRequest           Code = 421 // RFC 9110, 15.5.20
	UnprocessableEntity          Code = 422 // RFC 9110, 15.5.21
	Locked                       Code = 423 // RFC 4918, 11.3
	FailedDependency             Code = 424 // RFC 4918, 11.4
	TooEarly                     Code = 425 // RFC 8470, 5.2.
	UpgradeRequired              Code = 426 // RFC 9110, 15.5.22
	PreconditionRequired         Code = 428 // RFC 6585, 3
	TooManyRequests              Code = 429 // RFC 6585, 4
	RequestHeaderFieldsTooLarge  Code = 431 // RFC 6585, 5
	UnavailableForLegalReasons   Code = 451 // RFC 7725, 3

	InternalServerError           Code = 500 // RFC 9110, 15.6.1
	NotImplemented                Code = 501 // RFC 9110, 15.6.2
	BadGateway                    Code = 502 // RFC 9110, 15.6.3
	ServiceUnavailable            Code = 503 // RFC 9110, 15.6.4
	GatewayTimeout                Code = 504 // RFC 9110, 15.6.5
	HTTPVersionNotSupported       Code = 505 // RFC 9110, 15.6.6
	VariantAlsoNegotiates         Code = 506 // RFC 2295, 8.1
	InsufficientStorage           Code = 507 // RFC 4918, 11.5
	LoopDetected                  Code = 508 // RFC 5842, 7.2
	NotExtended                   Code = 510 // RFC 2774, 7
	NetworkAuthenticationRequired Code = 511 // RFC 6585, 6
)

// KnownCodes lists every code of the registry in ascending order.
var KnownCodes = []Code{
	Continue, SwitchingProtocols, Processing, EarlyHints,
	OK, Created, Accepted, NonAuthoritativeInfo, NoContent, ResetContent, PartialContent,
	MultiStatus, AlreadyReported, IMUsed,
	MultipleChoices, MovedPermanently, Found, SeeOther, NotModified, UseProxy,
	TemporaryRedirect, PermanentRedirect,
	BadRequest, Unauthorized, PaymentRequired, Forbidden, NotFound, MethodNotAllowed,
	NotAcceptable, ProxyAuthRequired, RequestTimeout, Conflict, Gone, LengthRequired,
	PreconditionFailed, RequestEntityTooLarge, RequestURITooLong, UnsupportedMediaType,
	RequestedRangeNotSatisfiable, ExpectationFailed, Teapot, MisdirectedRequest,
	UnprocessableEntity, Locked, FailedDependency, TooEarly, UpgradeRequired,
	PreconditionRequired, TooManyRequests, RequestHeaderFieldsTooLarge,
	UnavailableForLegalReasons,
	InternalServerError, NotImplemented, BadGateway, ServiceUnavailable, GatewayTimeout,
	HTTPVersionNotSupported, VariantAlsoNegotiates, InsufficientStorage, LoopDetected,
	NotExtended, NetworkAuthenticationRequired,
}

// names hold the identifier of each code, which the reason phrase is derived from.
var names = map[Code]string{
	Continue:           "Continue",
	SwitchingProtocols: "SwitchingProtocols",
	Processing:         "Processing",
	EarlyHints:         "EarlyHints",

	OK:                   "Ok",
	Created:              "Created",
	Accepted:             "Accepted",
	NonAuthoritativeInfo: "NonAuthoritativeInformation",
	NoContent:            "NoContent",
	ResetContent:         "ResetContent",
	PartialContent:       "PartialContent",
	MultiStatus:          "MultiStatus",
	AlreadyReported:      "AlreadyReported",
	IMUsed:               "IMUsed",

	MultipleChoices:   "MultipleChoices",
	MovedPermanently:  "MovedPermanently",
	Found:             "Found",
	SeeOther:          "SeeOther",
	NotModified:       "NotModified",
	UseProxy:          "UseProxy",
	TemporaryRedirect: "TemporaryRedirect",
	PermanentRedirect: "PermanentRedirect",

	BadRequest:                   "BadRequest",
	Unauthorized:                 "Unauthorized",
	PaymentRequired:              "PaymentRequired",
	Forbidden:                    "Forbidden",
	NotFound:                     "NotFound",
	MethodNotAllowed:             "MethodNotAllowed",
	NotAcceptable:                "NotAcceptable",
	ProxyAuthRequired:            "ProxyAuthenticationRequired",
	RequestTimeout:               "RequestTimeout",
	Conflict:                     "Conflict",
	Gone:                         "Gone",
	LengthRequired:               "LengthRequired",
	PreconditionFailed:           "PreconditionFailed",
	RequestEntityTooLarge:        "PayloadTooLarge",
	RequestURITooLong:            "URITooLong",
	UnsupportedMediaType:         "UnsupportedMediaType",
	RequestedRangeNotSatisfiable: "RangeNotSatisfiable",
	ExpectationFailed:            "ExpectationFailed",
	Teapot:                       "ImATeapot",
	MisdirectedRequest:           "MisdirectedRequest",
	UnprocessableEntity:          "UnprocessableEntity",
	Locked:                       "Locked",
	FailedDependency:             "FailedDependency",
	TooEarly:                     "TooEarly",
	UpgradeRequired:              "UpgradeRequired",
	PreconditionRequired:         "PreconditionRequired",
	TooManyRequests:              "TooManyRequests",
	RequestHeaderFieldsTooLarge:  "RequestHeaderFieldsTooLarge",
	UnavailableForLegalReasons:   "UnavailableForLegalReasons",

	InternalServerError:           "InternalServerError",
	NotImplemented:                "NotImplemented",
	BadGateway:                    "BadGateway",
	ServiceUnavailable:            "ServiceUnavailable",
	GatewayTimeout:                "GatewayTimeout",
	HTTPVersionNotSupported:       "HttpVersionNotSupported",
	VariantAlsoNegotiates:         "VariantAlsoNegotiates",
	InsufficientStorage:           "InsufficientStorage",
	LoopDetected:                  "LoopDetected",
	NotExtended:                   "NotExtended",
	NetworkAuthenticationRequired: "NetworkAuthenticationRequired",
}

const unknownName = "UnknownStatusCode"

// texts caches Text for every known code.
var texts = make(map[Code]string, len(names))

func init() {
	for code, name := range names {
		texts[code] = strconv.Itoa(int(code)) + " " + shout(name)
	}
}

// Reason returns the reason phrase of the code: its identifier in upper case, words
// separated by a single space. NotFound becomes "NOT FOUND".
func Reason(code Code) string {
	name, found := names[code]
	if !found {
		name = unknownName
	}

	return shout(name)
}

// Text returns the code followed by its reason phrase, e.g. "404 NOT FOUND". This is
// exactly what goes after the protocol token in a status line.
func Text(code Code) string {
	if text, found := texts[code]; found {
		return text
	}

	return strconv.Itoa(int(code)) + " " + shout(unknownName)
}

// shout upper-cases the identifier and puts a space before every upper-case letter
// except the leading one.
func shout(name string) string {
	var b strings.Builder
	b.Grow(len(name) * 2)

	for i, c := range name {
		if i > 0 && unicode.IsUpper(c) {
			b.WriteByte(' ')
		}

		b.WriteRune(unicode.ToUpper(c))
	}

	return b.String()
}
