package handlers

import (
	"github.com/gofiber/fiber/v2"
)

const legalStyle = `<style>body{font-family:-apple-system,BlinkMacSystemFont,sans-serif;max-width:800px;margin:0 auto;padding:20px;color:#333}h1{color:#1a1a1a}h2{color:#444;margin-top:30px}</style>`

type LegalHandler struct{}

func NewLegalHandler() *LegalHandler {
	return &LegalHandler{}
}

func (h *LegalHandler) PrivacyPolicy(c *fiber.Ctx) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html><head><title>Privacy Policy - Say It Forward</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
` + legalStyle + `
</head><body>
<h1>Privacy Policy</h1>
<p>Last updated: August 2026</p>
<h2>Information We Collect</h2>
<p>We collect your email address and the messages you post to provide our services. If you sign in with Apple, we receive your Apple ID identifier.</p>
<h2>How We Use Your Information</h2>
<p>Your data is used solely to operate Say It Forward, authenticate your account, and keep the community safe.</p>
<h2>Reports and Blocking</h2>
<p>When you report content or block another user, we store that record to enforce our community guidelines. Reports are reviewed by human moderators.</p>
<h2>Account Deletion</h2>
<p>You can delete your account and all associated data at any time from the app settings.</p>
<h2>Contact</h2>
<p>For questions about this policy, contact us at support@sayitforward.app</p>
</body></html>`)
}

func (h *LegalHandler) TermsOfService(c *fiber.Ctx) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html><head><title>Terms of Service - Say It Forward</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
` + legalStyle + `
</head><body>
<h1>Terms of Service</h1>
<p>Last updated: August 2026</p>
<h2>Acceptance</h2>
<p>By using Say It Forward, you agree to these terms and to our community guidelines.</p>
<h2>Your Content</h2>
<p>You own the messages you post. You grant us a license to display them to other users of the service.</p>
<h2>Prohibited Conduct</h2>
<p>Harassment, spam, impersonation, and posting unlawful content are prohibited. Violations may result in content removal, warnings, suspension, or a permanent ban.</p>
<h2>Termination</h2>
<p>We may suspend or terminate accounts that violate these terms.</p>
</body></html>`)
}

func (h *LegalHandler) CommunityGuidelines(c *fiber.Ctx) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html><head><title>Community Guidelines - Say It Forward</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
` + legalStyle + `
</head><body>
<h1>Community Guidelines</h1>
<p>Say It Forward is a place for encouragement. Keep it kind.</p>
<h2>Report, Don't Retaliate</h2>
<p>If you see content that breaks these rules, report it from the message menu. Every report is reviewed by a moderator.</p>
<h2>Blocking</h2>
<p>You can block any user at any time. Blocked users' messages disappear from your feeds immediately, and they stop seeing yours.</p>
<h2>Enforcement</h2>
<p>Moderators may remove content, issue warnings, suspend accounts for seven days, or permanently ban repeat offenders.</p>
</body></html>`)
}
