package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/auth-service/pkg/jwt"
)

var testCfg = jwt.Config{
	Secret:   "clave-secreta-de-prueba-de-32-chars!",
	Issuer:   "auth-service-test",
	Audience: "auth-clients-test",
}

const (
	testUserID    = "c7b6f1f8-19f3-4c4e-928b-60e4f0a3b5af"
	testEmail     = "admin@empresa.com"
	testCompanyID = "b9d4c5a9-3f8e-4e6f-9d4b-6cfa1f118b56"
)

func TestGenerateAndParse_Claims(t *testing.T) {
	tok, err := jwt.Generate(testCfg, testUserID, testEmail, testCompanyID, "AdminCompany")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := jwt.Parse(testCfg, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, claims.Subject)
	assert.Equal(t, testEmail, claims.Email)
	assert.Equal(t, testCompanyID, claims.CompanyID)
	assert.Equal(t, "AdminCompany", claims.Role)
	assert.Equal(t, testCfg.Issuer, claims.Issuer)
	assert.Contains(t, claims.Audience, testCfg.Audience)
	assert.NotEmpty(t, claims.ID, "cada token debe llevar un jti único")
}

func TestGenerate_ExpiraEnOchoHoras(t *testing.T) {
	tok, err := jwt.Generate(testCfg, testUserID, testEmail, testCompanyID, "AdminCompany")
	require.NoError(t, err)

	claims, err := jwt.Parse(testCfg, tok)
	require.NoError(t, err)

	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, 8*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time),
		"la expiración debe ser exactamente emisión + 8 horas")
}

func TestGenerate_JTIUnicoPorToken(t *testing.T) {
	t1, err := jwt.Generate(testCfg, testUserID, testEmail, testCompanyID, "AdminCompany")
	require.NoError(t, err)
	t2, err := jwt.Generate(testCfg, testUserID, testEmail, testCompanyID, "AdminCompany")
	require.NoError(t, err)

	c1, err := jwt.Parse(testCfg, t1)
	require.NoError(t, err)
	c2, err := jwt.Parse(testCfg, t2)
	require.NoError(t, err)

	assert.NotEqual(t, c1.ID, c2.ID)
}

func TestGenerate_RolVacioUsaDefault(t *testing.T) {
	tok, err := jwt.Generate(testCfg, testUserID, testEmail, testCompanyID, "")
	require.NoError(t, err)

	claims, err := jwt.Parse(testCfg, tok)
	require.NoError(t, err)
	assert.Equal(t, jwt.DefaultRole, claims.Role)
}

func TestParse_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := jwt.Generate(testCfg, testUserID, testEmail, testCompanyID, "AdminCompany")
	require.NoError(t, err)

	otro := testCfg
	otro.Secret = "otra-clave-completamente-distinta-32c"
	_, err = jwt.Parse(otro, tok)
	assert.Error(t, err, "un token firmado con otra clave no debe validar")
}

func TestParse_AudienceIncorrecto_RetornaError(t *testing.T) {
	tok, err := jwt.Generate(testCfg, testUserID, testEmail, testCompanyID, "AdminCompany")
	require.NoError(t, err)

	otro := testCfg
	otro.Audience = "otra-audiencia"
	_, err = jwt.Parse(otro, tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio_RetornaError(t *testing.T) {
	vacio := jwt.Config{Issuer: "x", Audience: "y"}
	_, err := jwt.Generate(vacio, testUserID, testEmail, testCompanyID, "AdminCompany")
	assert.Error(t, err)
}
