package handler

// errorResponse documents the error envelope returned on all 4xx/5xx
// responses; the central error handler renders it.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type wakeRequest struct {
	Name string `json:"name" validate:"required"`
	MAC  string `json:"mac"  validate:"required"`
}

type wakeResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type addUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=admin user"`
}

type setPermissionsRequest struct {
	AllowedMACs []string `json:"allowed_macs"`
}

type addMachineRequest struct {
	Name string `json:"name" validate:"required"`
	MAC  string `json:"mac"  validate:"required,mac"`
}

// userResponse is the outbound view of an account. Credentials never
// leave the server.
type userResponse struct {
	Username    string   `json:"username"`
	Role        string   `json:"role"`
	AllowedMACs []string `json:"allowed_macs"`
}

type machineResponse struct {
	Name string `json:"name"`
	MAC  string `json:"mac"`
}
