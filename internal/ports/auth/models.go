package auth

// Claims es la identidad extraída del token. El core nunca lee sesión
// ambiente: los handlers sacan el UserID de acá y lo pasan explícito.
type Claims struct {
	UserID string
	Email  string
}
