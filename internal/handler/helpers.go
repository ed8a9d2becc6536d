package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"reflect"
	"time"

	"github.com/silvioaquino/pdv-netlify/internal/apierror"
	"github.com/silvioaquino/pdv-netlify/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds the JSON body and runs go-playground/validator tags.
// Returns false and writes the 400 envelope if anything fails — the caller
// should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.Fail("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		msg := "Dados inválidos"
		if fes, ok := err.(validator.ValidationErrors); ok && len(fes) > 0 {
			msg = "Campo inválido ou ausente: " + fes[0].Field()
		}
		c.JSON(http.StatusBadRequest, apierror.Fail(msg))
		return false
	}
	return true
}

// fail maps a service error onto the response envelope. Internal causes are
// logged here with the request id; clients only ever see the safe message.
func fail(c *gin.Context, err error) {
	apiErr := apierror.From(err)
	if apiErr.Status >= http.StatusInternalServerError {
		log.Error().
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("path", c.FullPath()).
			Str("method", c.Request.Method).
			Err(apiErr.Err).
			Msg("internal error")
	}
	c.JSON(apiErr.Status, apierror.Fail(apiErr.Message))
}

// parseData validates a :data path param. Reports are keyed by calendar day.
func parseData(c *gin.Context) (string, bool) {
	data := c.Param("data")
	if _, err := time.Parse("2006-01-02", data); err != nil {
		c.JSON(http.StatusBadRequest, apierror.Fail("Data inválida, use o formato YYYY-MM-DD"))
		return "", false
	}
	return data, true
}

// parseID validates a uuid path param.
func parseID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.Fail("ID inválido"))
		return uuid.Nil, false
	}
	return id, true
}

// reportCacheTTL bounds how stale the by-date reports may get.
const reportCacheTTL = 60 * time.Second

// cacheGetJSON loads a cached report payload. Any cache failure reads as a
// miss so the request falls through to the database.
func cacheGetJSON(ctx context.Context, rdb *redis.Client, key string, dest interface{}) bool {
	if rdb == nil {
		return false
	}
	b, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(b, dest) == nil
}

// cacheSetJSON stores a report payload — best effort, ignore errors.
func cacheSetJSON(rdb *redis.Client, key string, v interface{}, ttl time.Duration) {
	if rdb == nil {
		return
	}
	if b, err := json.Marshal(v); err == nil {
		_ = rdb.Set(context.Background(), key, b, ttl).Err()
	}
}
