package constants

const (
	APP_NAME           = "Blogspot"
	MAX_POST_LENGTH    = 50000
	MAX_COMMENT_LENGTH = 2000
)
