package shared

import "fmt"

// Supported client-facing locales.
const (
	LocaleEnglish    = "en"
	LocalePortuguese = "pt-BR"
)

// Messages is the catalog of client-facing texts for one locale. Every error
// body the API writes is taken from here, never from an internal error string.
type Messages struct {
	Locale string

	MissingToken    string
	InvalidToken    string
	ExpiredToken    string
	Forbidden       string
	ProfileForbid   string
	UserNotFound    string
	ProfileNotFound string
	NotFound        string
	EmailExists     string
	WrongPassword   string
	InvalidBody     string
	Unexpected      string

	invalidField   string
	userDeleted    string
	profileDeleted string
}

var english = Messages{
	Locale:          LocaleEnglish,
	MissingToken:    "Token not provided",
	InvalidToken:    "Invalid token",
	ExpiredToken:    "Token expired",
	Forbidden:       "You do not have permission to access this resource",
	ProfileForbid:   "You do not have permission to delete this profile",
	UserNotFound:    "User not found",
	ProfileNotFound: "Profile not found",
	NotFound:        "Resource not found",
	EmailExists:     "Email already exists",
	WrongPassword:   "Invalid password",
	InvalidBody:     "Invalid request body",
	Unexpected:      "An unexpected error occurred",
	invalidField:    "Invalid value for field %s",
	userDeleted:     "User with ID: %s deleted",
	profileDeleted:  "Profile with ID: %s deleted",
}

var portuguese = Messages{
	Locale:          LocalePortuguese,
	MissingToken:    "Token não fornecido",
	InvalidToken:    "Token inválido",
	ExpiredToken:    "Token expirado",
	Forbidden:       "Você não tem permissão para acessar esse recurso",
	ProfileForbid:   "Você não tem permissão para deletar esse perfil",
	UserNotFound:    "Usuário não encontrado",
	ProfileNotFound: "Perfil não encontrado",
	NotFound:        "Recurso não encontrado",
	EmailExists:     "Email já existe",
	WrongPassword:   "Senha inválida",
	InvalidBody:     "Corpo da requisição inválido",
	Unexpected:      "Um erro inesperado ocorreu",
	invalidField:    "Valor inválido para o campo %s",
	userDeleted:     "Usuário com o ID: %s deletado",
	profileDeleted:  "Perfil com o ID: %s deletado",
}

// MessagesFor returns the catalog for locale, falling back to English.
func MessagesFor(locale string) *Messages {
	switch locale {
	case LocalePortuguese, "pt_BR", "pt":
		m := portuguese
		return &m
	default:
		m := english
		return &m
	}
}

// InvalidField formats the message for a rejected input field.
func (m *Messages) InvalidField(field string) string {
	return fmt.Sprintf(m.invalidField, field)
}

// UserDeleted formats the confirmation for a removed account.
func (m *Messages) UserDeleted(id fmt.Stringer) string {
	return fmt.Sprintf(m.userDeleted, id)
}

// ProfileDeleted formats the confirmation for a removed profile.
func (m *Messages) ProfileDeleted(id fmt.Stringer) string {
	return fmt.Sprintf(m.profileDeleted, id)
}
