package servers

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger_DocumentIsValid(t *testing.T) {
	doc, err := GetSwagger()
	require.NoError(t, err)

	require.NoError(t, doc.Validate(context.Background()))
	assert.Equal(t, "/api/v1", doc.Servers[0].URL)
	assert.NotNil(t, doc.Paths.Find("/shipments/track"))
	assert.NotNil(t, doc.Paths.Find("/bookings/{id}/confirm"))
}

const extraTagsKey = "x-oapi-codegen-extra-tags"

func TestValidateTags_DeclaredInDocument(t *testing.T) {
	doc, err := GetSwagger()
	require.NoError(t, err)

	models := map[string]any{
		"AdvanceBookingRequest":   AdvanceBookingRequest{},
		"NewBooking":              NewBooking{},
		"NewPayment":              NewPayment{},
		"NewRelocation":           NewRelocation{},
		"NewReview":               NewReview{},
		"NewShipment":             NewShipment{},
		"RefreshRequest":          RefreshRequest{},
		"RegisterCustomerRequest": RegisterCustomerRequest{},
		"RegisterProviderRequest": RegisterProviderRequest{},
		"RelocationPatch":         RelocationPatch{},
		"ReviewPatch":             ReviewPatch{},
		"SessionRequest":          SessionRequest{},
		"ShipmentStatusUpdate":    ShipmentStatusUpdate{},
	}

	for name, model := range models {
		t.Run(name, func(t *testing.T) {
			ref, ok := doc.Components.Schemas[name]
			require.True(t, ok, "schema %s", name)
			declared := declaredValidateTags(ref.Value)

			fromStruct := map[string]string{}
			typ := reflect.TypeOf(model)
			for i := 0; i < typ.NumField(); i++ {
				field := typ.Field(i)
				tag, has := field.Tag.Lookup("validate")
				if !has {
					continue
				}
				jsonName := strings.Split(field.Tag.Get("json"), ",")[0]
				fromStruct[jsonName] = tag
			}

			assert.Equal(t, declared, fromStruct)
		})
	}
}

func TestValidateTags_PasswordMinimumLength(t *testing.T) {
	field, ok := reflect.TypeOf(RegisterCustomerRequest{}).FieldByName("Password")
	require.True(t, ok)
	assert.Equal(t, "required,min=8", field.Tag.Get("validate"))

	field, ok = reflect.TypeOf(RegisterProviderRequest{}).FieldByName("Password")
	require.True(t, ok)
	assert.Equal(t, "required,min=8", field.Tag.Get("validate"))
}

// declaredValidateTags collects the validate extra tags of a schema's
// properties, following allOf members.
func declaredValidateTags(schema *openapi3.Schema) map[string]string {
	tags := map[string]string{}
	for _, member := range schema.AllOf {
		for prop, tag := range declaredValidateTags(member.Value) {
			tags[prop] = tag
		}
	}
	for prop, ref := range schema.Properties {
		extra, ok := ref.Value.Extensions[extraTagsKey].(map[string]any)
		if !ok {
			continue
		}
		if tag, ok := extra["validate"].(string); ok {
			tags[prop] = tag
		}
	}
	return tags
}
