package config

// API represents API server configuration
type API struct {
	CORS struct {
		Enabled        bool     `yaml:"enabled"`
		AllowedOrigins []string `yaml:"allowed_origins"`
		AllowedMethods []string `yaml:"allowed_methods"`
	} `yaml:"cors"`
	Auth struct {
		Enabled       bool   `yaml:"enabled"`
		JWTSecret     string `yaml:"jwt_secret"`
		JWTExpiration int    `yaml:"jwt_expiration"`
	} `yaml:"auth"`
}

// AuthEnabled reports whether requests must carry a valid token
func (a API) AuthEnabled() bool {
	return a.Auth.Enabled && a.Auth.JWTSecret != ""
}
