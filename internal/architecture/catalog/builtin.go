package catalog

import "github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/domain"

// Builtin returns the reference architecture shipped with the service.
// Every call returns a fresh, indexed copy.
func Builtin() *domain.Catalog {
	return domain.NewCatalog(builtinComponents(), builtinFlows(), builtinThreats(), builtinPhases())
}

func builtinComponents() []domain.Component {
	return []domain.Component{
		// core services
		{
			ID:          "siem-core",
			Name:        "Enterprise SIEM/SOAR",
			Provider:    domain.ProviderCore,
			Domain:      domain.DomainThreatDetection,
			Description: "Centralized Security Information & Event Management with automated response playbooks.",
			Icon:        "Activity",
			Compliance:  []string{"NIST-800-53", "ISO-27001", "PCI-DSS", "GDPR"},
			Mitigates:   []string{"Advanced Persistent Threats", "Insider Threats", "Zero-day Exploits"},
			DataCaptured: []domain.DataCapture{
				{Source: "All Clouds", Type: "Audit Logs", Mechanism: "API Ingestion"},
				{Source: "Endpoints", Type: "EDR Telemetry", Mechanism: "Forwarder"},
			},
		},
		{
			ID:          "cspm-core",
			Name:        "Unified CSPM",
			Provider:    domain.ProviderCore,
			Domain:      domain.DomainCompliance,
			Description: "Continuous cloud security posture management scanning for misconfigurations.",
			Icon:        "FileCheck",
			Compliance:  []string{"ISO-27001", "HIPAA"},
			Mitigates:   []string{"Misconfigurations", "Open Buckets", "Weak IAM Policies"},
			DataCaptured: []domain.DataCapture{
				{Source: "Cloud APIs", Type: "Config States", Mechanism: "Snapshot"},
			},
		},
		{
			ID:          "idp-core",
			Name:        "Global Identity Provider",
			Provider:    domain.ProviderCore,
			Domain:      domain.DomainIdentity,
			Description: "Centralized IdP (e.g., Okta/Entra ID) managing SSO and MFA across all clouds.",
			Icon:        "Fingerprint",
			Compliance:  []string{"NIST-800-63", "GDPR"},
			Mitigates:   []string{"Credential Theft", "Unauthorized Access"},
			DataCaptured: []domain.DataCapture{
				{Source: "Auth Requests", Type: "Sign-on Logs", Mechanism: "OIDC/SAML"},
			},
		},
		{
			ID:          "cicd-core",
			Name:        "DevSecOps Pipeline",
			Provider:    domain.ProviderCore,
			Domain:      domain.DomainCompliance,
			Description: "Automated CI/CD (GitHub Actions/Jenkins) with SAST/DAST integration.",
			Icon:        "GitBranch",
			Compliance:  []string{"ISO-27001"},
			Mitigates:   []string{"Insecure Code", "Hardcoded Secrets"},
			DataCaptured: []domain.DataCapture{
				{Source: "Code Commit", Type: "Build Logs", Mechanism: "Webhook"},
			},
		},

		// aws
		{
			ID:          "aws-waf",
			Name:        "AWS WAF & Shield",
			Provider:    domain.ProviderAWS,
			Domain:      domain.DomainNetwork,
			Description: "Web Application Firewall and DDoS protection at the edge.",
			Icon:        "Shield",
			Compliance:  []string{"PCI-DSS"},
			Mitigates:   []string{"SQL Injection", "XSS", "DDoS Volumetric Attacks"},
			DataCaptured: []domain.DataCapture{
				{Source: "Internet Traffic", Type: "HTTP Headers", Mechanism: "Inline Inspection"},
			},
		},
		{
			ID:          "aws-guardduty",
			Name:        "Amazon GuardDuty",
			Provider:    domain.ProviderAWS,
			Domain:      domain.DomainThreatDetection,
			Description: "Intelligent threat detection using ML on CloudTrail and VPC Flow Logs.",
			Icon:        "Eye",
			Compliance:  []string{"NIST-800-53"},
			Mitigates:   []string{"Crypto Jacking", "Port Scanning", "Account Compromise"},
			DataCaptured: []domain.DataCapture{
				{Source: "VPC", Type: "Flow Logs", Mechanism: "Internal Tape"},
				{Source: "DNS", Type: "Query Logs", Mechanism: "Internal Tape"},
			},
		},
		{
			ID:          "aws-workload",
			Name:        "EC2 Production App",
			Provider:    domain.ProviderAWS,
			Domain:      domain.DomainEndpoint,
			Description: "Critical business application running on EC2 instances.",
			Icon:        "Server",
			Compliance:  []string{"GDPR"},
			Mitigates:   []string{},
		},
		{
			ID:          "aws-kms",
			Name:        "AWS KMS",
			Provider:    domain.ProviderAWS,
			Domain:      domain.DomainDataProtection,
			Description: "Key Management Service for managing cryptographic keys.",
			Icon:        "Key",
			Compliance:  []string{"FIPS 140-2"},
			Mitigates:   []string{"Data Leakage", "Unauthorized Decryption"},
			DataCaptured: []domain.DataCapture{
				{Source: "API", Type: "Key Usage Logs", Mechanism: "CloudTrail"},
			},
		},

		// azure
		{
			ID:          "azure-fw",
			Name:        "Azure Firewall Premium",
			Provider:    domain.ProviderAzure,
			Domain:      domain.DomainNetwork,
			Description: "Managed, cloud-based network security service that protects your Azure Virtual Network resources.",
			Icon:        "Globe",
			Compliance:  []string{"ISO-27001", "PCI-DSS"},
			Mitigates:   []string{"Data Exfiltration", "Malware Command & Control"},
			DataCaptured: []domain.DataCapture{
				{Source: "VNet", Type: "Packet Inspection", Mechanism: "Inline"},
			},
		},
		{
			ID:          "azure-defender",
			Name:        "Defender for Cloud",
			Provider:    domain.ProviderAzure,
			Domain:      domain.DomainThreatDetection,
			Description: "Cloud workload protection platform (CWPP) with integrated vulnerability scanning.",
			Icon:        "Shield",
			Compliance:  []string{"NIST-800-53", "HIPAA"},
			Mitigates:   []string{"Malware on VM", "Brute Force SSH/RDP"},
			DataCaptured: []domain.DataCapture{
				{Source: "VM Extensions", Type: "System Events", Mechanism: "Agent"},
			},
		},
		{
			ID:          "azure-db",
			Name:        "Azure SQL Database",
			Provider:    domain.ProviderAzure,
			Domain:      domain.DomainDataProtection,
			Description: "Managed relational database service with advanced data security.",
			Icon:        "Database",
			Compliance:  []string{"GDPR", "HIPAA"},
			Mitigates:   []string{"SQL Injection", "Unauthorized Access"},
			DataCaptured: []domain.DataCapture{
				{Source: "Database Engine", Type: "Query Audit", Mechanism: "Native Logging"},
			},
		},
		{
			ID:          "azure-kv",
			Name:        "Azure Key Vault",
			Provider:    domain.ProviderAzure,
			Domain:      domain.DomainDataProtection,
			Description: "Safeguard cryptographic keys and other secrets used by cloud apps and services.",
			Icon:        "Vault",
			Compliance:  []string{"FIPS 140-2", "PCI-DSS"},
			Mitigates:   []string{"Secret Exposure", "Key Theft"},
			DataCaptured: []domain.DataCapture{
				{Source: "Access Policies", Type: "Access Logs", Mechanism: "Azure Monitor"},
			},
		},

		// gcp
		{
			ID:          "gcp-armor",
			Name:        "Cloud Armor",
			Provider:    domain.ProviderGCP,
			Domain:      domain.DomainNetwork,
			Description: "Enterprise DDoS defense and WAF policies at global scale.",
			Icon:        "Shield",
			Compliance:  []string{"PCI-DSS"},
			Mitigates:   []string{"L7 DDoS", "OWASP Top 10"},
			DataCaptured: []domain.DataCapture{
				{Source: "Load Balancer", Type: "Request Metadata", Mechanism: "Inline"},
			},
		},
		{
			ID:          "gcp-scc",
			Name:        "Security Command Center",
			Provider:    domain.ProviderGCP,
			Domain:      domain.DomainThreatDetection,
			Description: "Centralized vulnerability and threat reporting service.",
			Icon:        "Activity",
			Compliance:  []string{"NIST-800-53"},
			Mitigates:   []string{"Public IP Exposure", "Privilege Escalation"},
			DataCaptured: []domain.DataCapture{
				{Source: "Assets", Type: "Discovery Data", Mechanism: "API Scanning"},
			},
		},
		{
			ID:          "gcp-kms",
			Name:        "Cloud KMS",
			Provider:    domain.ProviderGCP,
			Domain:      domain.DomainDataProtection,
			Description: "Cloud-hosted key management service that lets you manage cryptographic keys.",
			Icon:        "Key",
			Compliance:  []string{"FIPS 140-2"},
			Mitigates:   []string{"Data Breach", "Compromised Keys"},
			DataCaptured: []domain.DataCapture{
				{Source: "API", Type: "Admin Activity", Mechanism: "Audit Logs"},
			},
		},
		{
			ID:          "gcp-repo",
			Name:        "Artifact Registry",
			Provider:    domain.ProviderGCP,
			Domain:      domain.DomainCompliance,
			Description: "Secure private registry for Docker images and Maven artifacts.",
			Icon:        "Container",
			Compliance:  []string{"SLSA Level 3"},
			Mitigates:   []string{"Supply Chain Attacks", "Malicious Images"},
		},

		// external actors
		{
			ID:          "internet",
			Name:        "Public Internet / Users",
			Provider:    domain.ProviderExternal,
			Domain:      domain.DomainNetwork,
			Description: "Source of legitimate traffic and potential threats.",
			Icon:        "Globe",
			Compliance:  []string{},
			Mitigates:   []string{},
		},
		{
			ID:          "attacker",
			Name:        "Threat Actor",
			Provider:    domain.ProviderExternal,
			Domain:      domain.DomainThreatDetection,
			Description: "Simulated external attacker.",
			Icon:        "Zap",
			Compliance:  []string{},
			Mitigates:   []string{},
		},
	}
}

func builtinFlows() []domain.Flow {
	standard := []string{domain.ModeDefault, domain.ModeDataflow}
	withLogging := []string{domain.ModeDefault, domain.ModeDataflow, domain.ModeLogging}

	return []domain.Flow{
		// normal traffic
		{ID: "flow-1", From: "internet", To: "aws-waf", Type: domain.FlowTraffic, Label: "HTTPS", Description: "User traffic enters AWS via WAF", ActiveInModes: standard},
		{ID: "flow-2", From: "aws-waf", To: "aws-workload", Type: domain.FlowTraffic, Label: "Filtered", Description: "Clean traffic reaches App", ActiveInModes: standard},

		// logging
		{ID: "flow-3", From: "aws-guardduty", To: "siem-core", Type: domain.FlowLogging, Label: "Findings", Description: "GuardDuty sends findings to Central SIEM", ActiveInModes: withLogging},
		{ID: "flow-4", From: "azure-defender", To: "siem-core", Type: domain.FlowLogging, Label: "Alerts", Description: "Defender signals sent to SIEM", ActiveInModes: withLogging},
		{ID: "flow-5", From: "gcp-scc", To: "siem-core", Type: domain.FlowLogging, Label: "Reports", Description: "SCC vulnerabilities aggregated", ActiveInModes: withLogging},

		// cross-cloud data
		{ID: "flow-6", From: "aws-workload", To: "azure-db", Type: domain.FlowTraffic, Label: "App Data", Description: "App accesses Azure SQL via VPN", ActiveInModes: standard},

		// identity and delivery
		{ID: "flow-idp-1", From: "idp-core", To: "aws-workload", Type: domain.FlowTraffic, Label: "SSO/SAML", Description: "Identity Provider authenticates session", ActiveInModes: standard},
		{ID: "flow-idp-2", From: "idp-core", To: "azure-db", Type: domain.FlowTraffic, Label: "Entra ID", Description: "Database access via Managed Identity", ActiveInModes: standard},
		{ID: "flow-cicd-1", From: "cicd-core", To: "aws-workload", Type: domain.FlowTraffic, Label: "Deploy", Description: "Pipeline deploys new build artifact", ActiveInModes: standard},
		{ID: "flow-cicd-2", From: "cicd-core", To: "gcp-repo", Type: domain.FlowTraffic, Label: "Push Image", Description: "Store container image in secure registry", ActiveInModes: standard},

		// encryption
		{ID: "flow-kms-1", From: "aws-workload", To: "aws-kms", Type: domain.FlowTraffic, Label: "Decrypt", Description: "App requests key to decrypt data", ActiveInModes: standard},
		{ID: "flow-kms-2", From: "azure-db", To: "azure-kv", Type: domain.FlowTraffic, Label: "Fetch Secret", Description: "DB retrieves connection string/keys", ActiveInModes: standard},
		{ID: "flow-kms-3", From: "gcp-repo", To: "gcp-kms", Type: domain.FlowLogging, Label: "Sign", Description: "Verify image signature", ActiveInModes: standard},

		// attack paths, only present in their threat mode
		{ID: "attack-1", From: "attacker", To: "aws-waf", Type: domain.FlowAttack, Label: "DDoS Attack", Description: "Volumetric UDP Flood", ActiveInModes: []string{"threat-ddos"}},
		{ID: "attack-2", From: "attacker", To: "azure-db", Type: domain.FlowAttack, Label: "SQL Injection", Description: "Attempted SQLi on Database", ActiveInModes: []string{"threat-sqli"}},
	}
}

func builtinThreats() []domain.ThreatVector {
	return []domain.ThreatVector{
		{
			ID:                 "threat-ddos",
			Name:               "Volumetric DDoS",
			Description:        "Massive UDP flood targeting the application edge.",
			Severity:           domain.SeverityCritical,
			AffectedComponents: []string{"aws-waf", "aws-workload"},
			FlowID:             "attack-1",
		},
		{
			ID:                 "threat-sqli",
			Name:               "SQL Injection Campaign",
			Description:        "Sophisticated injection attempts targeting customer database.",
			Severity:           domain.SeverityHigh,
			AffectedComponents: []string{"azure-db", "aws-workload"},
			FlowID:             "attack-2",
		},
	}
}

func builtinPhases() []domain.RolloutPhase {
	return []domain.RolloutPhase{
		{
			ID:                "phase-1",
			Phase:             "Phase 1",
			Title:             "Landing Zone Foundation",
			RelatedComponents: []string{"aws-guardduty", "gcp-scc", "siem-core", "idp-core"},
			Steps: []domain.ImplementationStep{
				{Title: "Identity Federation", Description: "Configure AWS IAM Identity Center and Azure Entra ID with single sign-on (SSO)."},
				{Title: "Network Hub & Spoke", Description: "Deploy Transit Gateways (AWS) and vWAN (Azure) for centralized traffic inspection."},
				{Title: "Enable Base Monitoring", Description: "Turn on GuardDuty, Azure Defender, and SCC Standard across all accounts."},
			},
		},
		{
			ID:                "phase-2",
			Phase:             "Phase 2",
			Title:             "Perimeter & Edge Security",
			RelatedComponents: []string{"aws-waf", "gcp-armor", "azure-fw"},
			Steps: []domain.ImplementationStep{
				{Title: "WAF Deployment", Description: "Deploy WAF policies (AWS WAF, Cloud Armor) on public load balancers to block OWASP Top 10."},
				{Title: "DDoS Protection", Description: "Enable AWS Shield Advanced and Azure DDoS Protection on critical public IPs."},
				{Title: "Egress Filtering", Description: "Configure Azure Firewall Premium to inspect outbound traffic for C2 communication."},
			},
		},
		{
			ID:                "phase-3",
			Phase:             "Phase 3",
			Title:             "DevSecOps & Supply Chain",
			RelatedComponents: []string{"cicd-core", "gcp-repo", "gcp-kms"},
			Steps: []domain.ImplementationStep{
				{Title: "Secure Pipelines", Description: "Implement SAST/DAST scanning in GitHub Actions / Jenkins pipelines."},
				{Title: "Artifact Signing", Description: "Enforce image signing with Cosign and verify signatures using Binary Authorization."},
				{Title: "Secret Scanning", Description: "Prevent hardcoded secrets from reaching production repositories."},
			},
		},
		{
			ID:                "phase-4",
			Phase:             "Phase 4",
			Title:             "Workload & Data Protection",
			RelatedComponents: []string{"azure-defender", "aws-workload", "aws-kms", "azure-kv"},
			Steps: []domain.ImplementationStep{
				{Title: "Encryption at Rest", Description: "Migrate all storage encryption to Customer Managed Keys (CMK) via KMS/Key Vault."},
				{Title: "Vulnerability Mgmt", Description: "Configure automated scanning for OS vulnerabilities and container image flaws."},
				{Title: "File Integrity Monitoring", Description: "Enable FIM for critical system files to detect unauthorized changes."},
			},
		},
		{
			ID:                "phase-5",
			Phase:             "Phase 5",
			Title:             "Unified Detection (SIEM)",
			RelatedComponents: []string{"siem-core", "cspm-core"},
			Steps: []domain.ImplementationStep{
				{Title: "Log Aggregation", Description: "Stream CloudTrail, Activity Logs, and VPC Flow Logs to the central SIEM."},
				{Title: "Correlation Rules", Description: "Implement cross-cloud detection rules (e.g., \"Impossible Travel\" between AWS and Azure)."},
				{Title: "Automated Response", Description: "Deploy SOAR playbooks to automatically isolate compromised instances."},
			},
		},
	}
}
