package common

const (
	WATER_DATA_PATH    = "Doc/Water Data.xlsx"
	WORKFLOW_DATA_PATH = "Doc/Divine water system workflow.xlsx"
	CREDENTIALS_FILE   = "api.json"

	EMAIL_DOMAIN    = "gmail.com"
	PASSWORD_PREFIX = "Devine@"
	USER_ROLE       = "customer"
)

// Zero-based column offsets of the water data sheets.
const (
	COL_CUSTOMER_ID         = 2
	COL_NAME                = 3
	COL_DELIVERY_DAYS       = 4
	COL_AREA                = 5
	COL_REQUIRED_BOTTLES    = 6
	COL_OUTSTANDING_BOTTLES = 8
	COL_OPENING_BALANCE     = 10
	COL_PHONE               = 12
)

// DEFAULT_AREAS is the comma-separated list of service areas seeded by default.
const DEFAULT_AREAS = "Chishti Nagar,Mansoor Nagar"
