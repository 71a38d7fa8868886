package api

import (
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const accessCookieName = "liftlog_access"

// ValidateKey checks the shared access key. A match returns a signed token and
// sets it as a cookie; repeated misses from one client are throttled.
func (handler *Handler) ValidateKey(c *fiber.Ctx) error {
	payload := validateKeyPayload{}
	if !parseJSONBody(c, &payload) {
		return apiError(c, fiber.StatusBadRequest, errMessageInvalidBody)
	}

	limiterKey := requestLimiterKey(c)
	now := handler.clock.Now()
	if handler.accessLimiter.tooManyRecent(limiterKey, now, accessAttemptLimit, accessAttemptWindow) {
		wait := handler.accessLimiter.retryAfter(limiterKey, now, accessAttemptWindow)
		c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(math.Ceil(wait.Seconds()))))
		return apiError(c, fiber.StatusTooManyRequests, "too many attempts")
	}

	if !handler.access.Validate(payload.Key) {
		handler.accessLimiter.addFailure(limiterKey, now, accessAttemptWindow)
		handler.logger.Warn("access key rejected", zap.String("ip", limiterKey), zap.String("request_id", requestID(c)))
		return c.JSON(fiber.Map{"access": false})
	}
	handler.accessLimiter.reset(limiterKey)

	token, expiresAt, err := handler.access.IssueToken()
	if err != nil {
		return handler.serviceAPIError(c, err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     accessCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   c.Protocol() == "https",
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{"access": true, "token": token})
}

// AccessRequired rejects requests that carry no valid access token.
func (handler *Handler) AccessRequired(c *fiber.Ctx) error {
	if err := handler.access.VerifyToken(accessTokenFromRequest(c)); err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.Next()
}

func accessTokenFromRequest(c *fiber.Ctx) string {
	authorization := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if len(authorization) > len("Bearer ") && strings.EqualFold(authorization[:len("Bearer ")], "Bearer ") {
		return strings.TrimSpace(authorization[len("Bearer "):])
	}
	return c.Cookies(accessCookieName)
}
