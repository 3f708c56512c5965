package datasets

import "github.com/JonMunkholm/domainreg/internal/core"

func init() {
	registerRegistrars()
}

// RegistrarRecord is one ICANN-accredited registrar.
type RegistrarRecord struct {
	IANAID int64             `json:"iana_id"`
	Name   core.OptionalText `json:"name"`
	Link   []string          `json:"link"`
	Email  []string          `json:"email"`
	Form   []string          `json:"form"`
	API    core.OptionalText `json:"api"`
	Notes  core.OptionalText `json:"notes"`
	Found  core.OptionalText `json:"found"`
	AsOf   core.OptionalText `json:"as_of"`
}

var registrarFields = []core.FieldSpec{
	{Name: "iana_id", Kind: core.FieldIntKey},
	{Name: "name", Kind: core.FieldText}, // single value, unlike registries
	{Name: "link", Kind: core.FieldList},
	{Name: "email", Kind: core.FieldList},
	{Name: "form", Kind: core.FieldList},
	{Name: "api", Kind: core.FieldText},
	{Name: "notes", Kind: core.FieldText},
	{Name: "found", Kind: core.FieldText},
	{Name: "as_of", Kind: core.FieldText},
}

// BuildRegistrar maps a registrars.csv row to a RegistrarRecord.
//
// A blank iana_id returns core.ErrBlankKey. A non-integer iana_id returns
// a *core.RowError wrapping core.ErrInvalidKey.
func BuildRegistrar(row core.Row) (RegistrarRecord, error) {
	f, err := core.NormalizeRow(registrarFields, row)
	if err != nil {
		return RegistrarRecord{}, err
	}

	return RegistrarRecord{
		IANAID: f.IntKey(),
		Name:   f.Text("name"),
		Link:   f.List("link"),
		Email:  f.List("email"),
		Form:   f.List("form"),
		API:    f.Text("api"),
		Notes:  f.Text("notes"),
		Found:  f.Text("found"),
		AsOf:   f.Text("as_of"),
	}, nil
}

func registerRegistrars() {
	core.Register(core.DatasetDefinition{
		Info: core.DatasetInfo{
			Key:    "registrars",
			Label:  "Domain registrars",
			Input:  "registrars.csv",
			Output: "registrars.json",
			Order:  2,
		},
		FieldSpecs: registrarFields,
		BuildRecord: func(row core.Row) (any, error) {
			return BuildRegistrar(row)
		},
	})
}
