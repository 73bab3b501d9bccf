package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
condominios:
  - nome: Residencial Aurora
    cidade: Curitiba
    estado: pr
usuarios:
  - email: Sindico@Aurora.com
    nome: Ana
    senha: segredo123
    vinculos:
      - condominio: Residencial Aurora
        papel: sindico
        principal: true
templates:
  - nome: Inspecao de extintores
    nbr: NBR 12962
    periodicidade_dias: 365
    itens: [pressao, lacre]
`

func TestParse(t *testing.T) {
	data, err := Parse([]byte(sample))
	require.NoError(t, err)

	require.Len(t, data.Condominiums, 1)
	require.Len(t, data.Users, 1)
	assert.Equal(t, "sindico", data.Users[0].Links[0].Role)
	assert.True(t, data.Users[0].Links[0].Principal)
	assert.Equal(t, []string{"pressao", "lacre"}, data.Templates[0].Items)
}

func TestParseRejectsBadReferences(t *testing.T) {
	cases := map[string]string{
		"unknown condominium": `
usuarios:
  - email: a@b.com
    senha: x
    vinculos: [{condominio: Nope, papel: sindico}]
`,
		"unknown role": `
condominios: [{nome: A}]
usuarios:
  - email: a@b.com
    senha: x
    vinculos: [{condominio: A, papel: porteiro}]
`,
		"missing password": `
usuarios: [{email: a@b.com}]
`,
		"template without period": `
templates: [{nome: T, nbr: NBR 5674}]
`,
		"not yaml": "condominios: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(t.TempDir() + "/absent.yaml")
	assert.ErrorContains(t, err, "failed to read seed file")
}
