package service

// Token claim keys shared by the auth service and the API middleware.
const (
	ClaimPlayerID = "playerID"
	ClaimUsername = "username"
)
