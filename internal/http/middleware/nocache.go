package middleware

import "github.com/gofiber/fiber/v2"

// NoCache marks responses as revalidate-always. The guide page changes on
// every publish (and on every edit in preview mode), so browsers must not
// serve it from cache.
func NoCache() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		c.Set(fiber.HeaderCacheControl, "no-cache")
		return err
	}
}
