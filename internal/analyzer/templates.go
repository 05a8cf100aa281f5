package analyzer

import "github.com/supportbot/copilot-go/internal/model"

// responseTemplates 各主题的固定回复模板，进程内只读
var responseTemplates = map[model.Topic]string{
	model.TopicLoginIssue: `I understand you're experiencing login difficulties. Here are some steps to resolve this:

1. Clear your browser cache and cookies
2. Try using an incognito/private browsing window
3. Ensure you're using the correct email address
4. Check if Caps Lock is enabled

If these steps don't work, please try resetting your password using the "Forgot Password" link. Our system shows your account is active and in good standing.`,

	model.TopicFeatureRequest: `Thank you for taking the time to share your feature suggestion with us! Your feedback is incredibly valuable and helps us improve our platform.

I've forwarded your request to our product team for review. They evaluate all feature requests based on user demand, technical feasibility, and alignment with our roadmap.

You can track feature requests and vote on existing ones in our community forum. We typically provide updates on feature development during our monthly product releases.`,

	model.TopicDataExport: `I can help you export your data from Atlan. Here's how to do it:

1. Navigate to Settings → Data Management → Export
2. Select the data types you want to export (metadata, lineage, etc.)
3. Choose your preferred format (CSV, JSON, or Excel)
4. Click "Start Export"

Large exports may take several minutes to complete. You'll receive an email notification when your export is ready for download. Exported files are available for 7 days.`,

	model.TopicBillingQuestion: `I'm happy to help with your billing inquiry. Based on your account:

- Current Plan: Professional Plan
- Billing Cycle: Monthly (renews on the 15th)
- Next Charge: $299 on March 15th, 2024
- Payment Method: Credit card ending in 4567

You can view detailed billing history, update payment methods, or change your plan in the Billing section of your account settings. For enterprise pricing or custom arrangements, please contact our sales team.`,

	model.TopicPerformanceIssue: `I apologize for the performance issues you're experiencing. Let me help you troubleshoot this:

Our monitoring shows some elevated response times in the past hour, which our engineering team is actively investigating. Here are some immediate steps you can try:

1. Refresh your browser and clear cache
2. Try accessing from a different network
3. Reduce the complexity of your current query if applicable

Our team has been notified and is working on a resolution. We expect performance to return to normal within the next 30 minutes. I'll keep you updated on our progress.`,

	model.TopicIntegrationHelp: `I'd be happy to assist with your integration needs. Atlan offers several integration options:

**API Integration:**
- REST API with comprehensive documentation
- GraphQL endpoint for flexible queries
- Webhook support for real-time updates

**Pre-built Connectors:**
- 100+ data sources supported
- Popular tools: Snowflake, Databricks, dbt, Looker

**Getting Started:**
1. Generate API keys in Settings → Developer
2. Review our API documentation at docs.atlan.com
3. Use our Postman collection for testing

Would you like me to schedule a technical consultation call with our integration specialists?`,

	model.TopicAccountSetup: `Welcome to Atlan! I'm excited to help you get started. Your account setup is proceeding smoothly:

**Completed Steps:**
✅ Account created and verified
✅ Initial workspace configured
✅ Basic permissions assigned

**Next Steps:**
1. Complete your team member invitations
2. Connect your first data source
3. Set up your metadata standards
4. Schedule a success manager call

I've sent a detailed onboarding checklist to your email. Our customer success team will reach out within 24 hours to schedule your kickoff call and ensure you're getting the most value from Atlan.`,

	model.TopicDataSecurity: `Security is our top priority at Atlan. Here's how we protect your data:

**Encryption:**
- Data encrypted at rest (AES-256)
- Data encrypted in transit (TLS 1.3)
- End-to-end encryption for sensitive operations

**Compliance:**
- SOC 2 Type II certified
- GDPR compliant
- HIPAA compliance available

**Access Controls:**
- Role-based access control (RBAC)
- Single sign-on (SSO) integration
- Multi-factor authentication (MFA)

**Monitoring:**
- 24/7 security monitoring
- Regular penetration testing
- Automated threat detection

Your data remains within your specified geographic region and is never shared with third parties. Would you like me to provide our detailed security whitepaper?`,

	model.TopicGeneralInquiry: `Thank you for reaching out! I'm here to help with any questions about Atlan.

Based on your query, I can assist you with:
- Account management and settings
- Data cataloging and governance features
- Integration and API questions
- Billing and subscription management
- Technical troubleshooting

Could you provide a bit more detail about what specifically you'd like help with? This will allow me to give you the most accurate and helpful response.

You can also browse our help center at help.atlan.com or schedule a call with our support team if you prefer to discuss your needs in detail.`,
}

// SynthesizeResponse 返回主题对应的回复模板，未知主题回落到 General Inquiry
func SynthesizeResponse(topic model.Topic) string {
	if t, ok := responseTemplates[topic]; ok {
		return t
	}
	return responseTemplates[model.TopicGeneralInquiry]
}
