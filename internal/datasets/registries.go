package datasets

import "github.com/JonMunkholm/domainreg/internal/core"

func init() {
	registerRegistries()
}

// RegistryRecord is one top-level domain registry.
type RegistryRecord struct {
	TLD   string            `json:"tld"`
	Name  []string          `json:"name"`
	Link  []string          `json:"link"`
	Email []string          `json:"email"`
	Form  []string          `json:"form"`
	API   core.OptionalText `json:"api"`
	Notes core.OptionalText `json:"notes"`
	Found core.OptionalText `json:"found"`
	AsOf  core.OptionalText `json:"as_of"`
}

var registryFields = []core.FieldSpec{
	{Name: "tld", Kind: core.FieldKey},
	{Name: "name", Kind: core.FieldList},
	{Name: "link", Kind: core.FieldList},
	{Name: "email", Kind: core.FieldList},
	{Name: "form", Kind: core.FieldList},
	{Name: "api", Kind: core.FieldText},
	{Name: "notes", Kind: core.FieldText},
	{Name: "found", Kind: core.FieldText},
	{Name: "as_of", Kind: core.FieldText},
}

// BuildRegistry maps a registries.csv row to a RegistryRecord.
// Rows with a blank tld return core.ErrBlankKey.
func BuildRegistry(row core.Row) (RegistryRecord, error) {
	f, err := core.NormalizeRow(registryFields, row)
	if err != nil {
		return RegistryRecord{}, err
	}

	return RegistryRecord{
		TLD:   f.Key(),
		Name:  f.List("name"),
		Link:  f.List("link"),
		Email: f.List("email"),
		Form:  f.List("form"),
		API:   f.Text("api"),
		Notes: f.Text("notes"),
		Found: f.Text("found"),
		AsOf:  f.Text("as_of"),
	}, nil
}

func registerRegistries() {
	core.Register(core.DatasetDefinition{
		Info: core.DatasetInfo{
			Key:    "registries",
			Label:  "Domain registries",
			Input:  "registries.csv",
			Output: "registries.json",
			Order:  1,
		},
		FieldSpecs: registryFields,
		BuildRecord: func(row core.Row) (any, error) {
			return BuildRegistry(row)
		},
	})
}
