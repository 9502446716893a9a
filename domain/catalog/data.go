package catalog

// Canonical reference tables for the GoGarvis portal. These are the seed-time
// contents of every catalog; the serving path reads them from memory and the
// seed command writes them to the durable store.

// CanonicalDocuments returns the document metadata table
func CanonicalDocuments() []Document {
	return []Document{
		{ID: "69ad3608-fba2-48f0-98a5-60166202e9a1", Filename: "69ad3608-fba2-48f0-98a5-60166202e9a1_7.1_garvis_full_stack__one-page_architecture_diagram.pdf", Title: "GARVIS Full Stack Architecture Diagram", Category: "Architecture", Description: "One-page architectural reference showing authority flow across all system components."},
		{ID: "c4205f70-436c-47f4-85e1-a7a6e76ece8f", Filename: "c4205f70-436c-47f4-85e1-a7a6e76ece8f_0.2_canonical_glossary__garvis_full_stack.pdf", Title: "Canonical Glossary", Category: "Reference", Description: "Official terminology and definitions for the GARVIS Full Stack system."},
		{ID: "1dc7cd15-1039-4f63-a76a-cf60ffec7cc7", Filename: "1dc7cd15-1039-4f63-a76a-cf60ffec7cc7_0.1_pearl__pig__canonical_dictionary__language_authority.pdf", Title: "Pearl & Pig Canonical Dictionary", Category: "Reference", Description: "Language authority and canonical dictionary for the Pearl & Pig ecosystem."},
		{ID: "ee7437e6-b48a-40f8-a0d0-11752acb44fc", Filename: "ee7437e6-b48a-40f8-a0d0-11752acb44fc_2.1_garvis__executive_creative__systems_brief.pdf", Title: "GARVIS Executive Systems Brief", Category: "GARVIS", Description: "Executive overview of the GARVIS sovereign intelligence system."},
		{ID: "e23081a9-13a5-41c3-858f-2c55b64e6c6c", Filename: "e23081a9-13a5-41c3-858f-2c55b64e6c6c_2.2_garvis__telauthorium__enforcement_contract__engineering_specification.pdf", Title: "GARVIS Telauthorium Enforcement Contract", Category: "GARVIS", Description: "Engineering specification for enforcement contracts between GARVIS and Telauthorium."},
		{ID: "db8a2ffb-7435-4430-99d6-cc08b46eae6c", Filename: "db8a2ffb-7435-4430-99d6-cc08b46eae6c_Telauthorium__Executive_Creative__Systems_Brief.pdf", Title: "Telauthorium Executive Systems Brief", Category: "Telauthorium", Description: "Executive overview of the Telauthorium rights and provenance registry."},
		{ID: "ec618a24-4ab4-4290-b91d-37d78dd49ce1", Filename: "ec618a24-4ab4-4290-b91d-37d78dd49ce1_1.2_telauthorium_id_registry__master_list.pdf", Title: "Telauthorium ID Registry Master List", Category: "Telauthorium", Description: "Master list of all Telauthorium identifiers and registrations."},
		{ID: "4493d418-50d1-4ded-865d-f89f1c4633db", Filename: "4493d418-50d1-4ded-865d-f89f1c4633db_1.3_unified_identity__object_model__canonical_specification.pdf", Title: "Unified Identity Object Model", Category: "Identity", Description: "Canonical specification for the unified identity object model."},
		{ID: "9c06e3db-b6b8-4cbc-93f3-e9bb0af84fc2", Filename: "9c06e3db-b6b8-4cbc-93f3-e9bb0af84fc2_Flightpath_COS__Executive_Creative__Systems_Brief.pdf", Title: "Flightpath COS Executive Brief", Category: "Flightpath", Description: "Executive overview of the Flightpath Creative Operating System."},
		{ID: "96812e9e-894f-4e0c-a0f5-168e06f77659", Filename: "96812e9e-894f-4e0c-a0f5-168e06f77659_4.2_flightpath_cos__state_machine__proof_gates.pdf", Title: "Flightpath COS State Machine & Proof Gates", Category: "Flightpath", Description: "State machine and proof gate specifications for Flightpath COS."},
		{ID: "61852e42-7072-4c17-a832-1dd2f7a00dae", Filename: "61852e42-7072-4c17-a832-1dd2f7a00dae_4.3_mose__executive_creative__systems_brief.pdf", Title: "MOSE Executive Systems Brief", Category: "MOSE", Description: "Executive overview of the Multi-Operator Systems Engine."},
		{ID: "acb17996-d940-427c-bd36-3b7492ac684c", Filename: "acb17996-d940-427c-bd36-3b7492ac684c_4.4_mose__routing__escalation_logic_specification.pdf", Title: "MOSE Routing & Escalation Logic", Category: "MOSE", Description: "Specification for MOSE routing and escalation logic."},
		{ID: "befedcb2-53da-4314-9c0a-268ce42d7e25", Filename: "befedcb2-53da-4314-9c0a-268ce42d7e25_5.2_tela__executive__systems_brief.pdf", Title: "TELA Executive Systems Brief", Category: "TELA", Description: "Executive overview of the Trusted Efficiency Liaison Assistant."},
		{ID: "3f6b84bc-8205-406a-9c69-6cd72a3fcd68", Filename: "3f6b84bc-8205-406a-9c69-6cd72a3fcd68_5.3_tela__action_catalog__adapter_specification.pdf", Title: "TELA Action Catalog & Adapter Specification", Category: "TELA", Description: "Action catalog and adapter specifications for TELA execution."},
		{ID: "c09913ec-293e-40fb-8540-1d75cefe0536", Filename: "c09913ec-293e-40fb-8540-1d75cefe0536_3.1_pig_pen__canonical_operator_registry_(telauthorium-locked).pdf", Title: "Pig Pen Canonical Operator Registry", Category: "Pig Pen", Description: "Telauthorium-locked registry of non-human cognition operators."},
		{ID: "e56f70ad-6274-46db-8476-84cb3d698e88", Filename: "e56f70ad-6274-46db-8476-84cb3d698e88_5.1_audit__event_ledger__canonical_specification.pdf", Title: "Audit Event Ledger Specification", Category: "Audit", Description: "Canonical specification for the immutable audit and event ledger."},
		{ID: "d9a9a288-5bc2-4dbb-8da8-d76f2a343947", Filename: "d9a9a288-5bc2-4dbb-8da8-d76f2a343947_6.1_ecos__tenant-safe_executive__systems_brief__license_bundles.pdf", Title: "ECOS Tenant-Safe Executive Brief", Category: "ECOS", Description: "Executive overview of ECOS tenant deployments and license bundles."},
		{ID: "1df31a37-5a36-4191-b029-36d18dcf381f", Filename: "1df31a37-5a36-4191-b029-36d18dcf381f_Failure_Halt__Re-Authorization_Protocol.pdf", Title: "Failure Halt & Re-Authorization Protocol", Category: "Enforcement", Description: "Protocol for handling system failures, halts, and re-authorization."},
	}
}

// CanonicalGlossary returns the glossary table
func CanonicalGlossary() []GlossaryTerm {
	return []GlossaryTerm{
		// Core Systems
		{Term: "GARVIS", Definition: "Sovereign intelligence and enforcement layer governing reasoning, routing, and execution safety across all Pearl & Pig systems. GARVIS enforces truth but does not approve decisions.", Category: "Core Systems"},
		{Term: "Pearl & Pig", Definition: "Systems-first creative IP studio and sole owner of the GARVIS architecture and its constituent systems.", Category: "Core Systems"},
		{Term: "ECOS", Definition: "Enterprise Creative Operating System - A tenant-safe, white-label deployment pattern powered by GARVIS. Enterprises own their knowledge bases and outputs; Pearl & Pig retains system ownership.", Category: "Core Systems"},
		{Term: "Telauthorium", Definition: "Authoritative authorship, provenance, and rights registry. Nothing is real, licensable, or defensible unless registered in Telauthorium.", Category: "Core Systems"},
		{Term: "Flightpath COS", Definition: "Creative and operational law governing phase discipline, proof gates, and completion logic from SPARK through SUNSET.", Category: "Core Systems"},
		{Term: "MOSE", Definition: "Multi-Operator Systems Engine - Orchestration engine that routes work through Pig Pen operators under GARVIS enforcement and Flightpath constraints.", Category: "Core Systems"},
		{Term: "TELA", Definition: "Trusted Efficiency Liaison Assistant - Execution layer that converts authorized intent into real-world action through constrained adapters.", Category: "Core Systems"},
		{Term: "Pig Pen", Definition: "Frozen registry of non-human cognition operators (TAI-D) used for analysis, flags, and recommendations. Pig Pen operators never approve decisions.", Category: "Core Systems"},
		{Term: "UOL", Definition: "User Overlay Layer - Permissioned, advisory customization layer allowing user perspectives, goals, and role-based visibility without altering system authority.", Category: "Core Systems"},
		// Identity & Authority
		{Term: "TID", Definition: "Telauthorium ID - Immutable identity assigned to every object (idea, decision, artifact, output, deal, report, execution event).", Category: "Identity"},
		{Term: "TAID", Definition: "Telauthorium Authority ID - Immutable identifier representing a real human authority. All accountability resolves to a TAID.", Category: "Identity"},
		{Term: "TAI-D", Definition: "Telauthorium AI-D - Identifier assigned to a non-human Pig Pen operator. TAI-Ds have cognition authority only.", Category: "Identity"},
		{Term: "TSID", Definition: "Telauthorium Sovereign ID - Non-delegable sovereign authority identifier held by the Founder/Architect.", Category: "Identity"},
		{Term: "UOID", Definition: "User Overlay ID - Identifier for a specific user overlay pack applied at runtime.", Category: "Identity"},
		// Operational Terms
		{Term: "Routing Plan", Definition: "Ordered sequence of Pig Pen operator consults produced by MOSE prior to execution.", Category: "Operations"},
		{Term: "Execution Event", Definition: "Ledger-recorded action performed by TELA.", Category: "Operations"},
		{Term: "Decision Event", Definition: "Ledger-recorded resolution made by a human TAID.", Category: "Operations"},
		{Term: "Enforcement Event", Definition: "Ledger-recorded block, halt, or constraint trigger.", Category: "Operations"},
		{Term: "HALT", Definition: "System state indicating execution is illegal or unsafe to proceed.", Category: "Operations"},
		{Term: "PAUSE", Definition: "System state indicating execution is legal but requires human judgment before proceeding.", Category: "Operations"},
		// Commercial Terms
		{Term: "License Bundle", Definition: "A scoped, time-bound grant of access to GARVIS-powered capabilities. Ownership is never transferred.", Category: "Commercial"},
		{Term: "Component License", Definition: "License granting access to a specific system component (e.g., Telauthorium) under defined constraints.", Category: "Commercial"},
		{Term: "OEM Deployment", Definition: "Sandboxed, white-label deployment governed by Pearl & Pig with strict architectural isolation.", Category: "Commercial"},
		{Term: "Canon Lock", Definition: "Document version control requiring founder authorization for any changes, with version numbering and published delta logs.", Category: "Commercial"},
		// Phases
		{Term: "SPARK", Definition: "Initial ideation phase in the Flightpath COS lifecycle.", Category: "Phases"},
		{Term: "BUILD", Definition: "Development and construction phase in the Flightpath COS lifecycle.", Category: "Phases"},
		{Term: "LAUNCH", Definition: "Release and deployment phase in the Flightpath COS lifecycle.", Category: "Phases"},
		{Term: "EXPAND", Definition: "Growth and scaling phase in the Flightpath COS lifecycle.", Category: "Phases"},
		{Term: "EVERGREEN", Definition: "Ongoing maintenance and evolution phase in the Flightpath COS lifecycle.", Category: "Phases"},
		{Term: "SUNSET", Definition: "End-of-life and deprecation phase in the Flightpath COS lifecycle.", Category: "Phases"},
	}
}

// CanonicalComponents returns the architecture component table, ordered by
// authority layer from sovereign down to the ledger
func CanonicalComponents() []Component {
	return []Component{
		{ID: "sovereign", Name: "SOVEREIGN AUTHORITY", Description: "TSID-0001 Founder / Architect - Constitutional authority, final arbitration, versioning & canon control", Status: "active", Layer: 0, KeyFunctions: []string{"Constitutional authority", "Final arbitration", "Versioning & canon control"}},
		{ID: "telauthorium", Name: "TELAUTHORIUM", Description: "Authorship, Provenance, Rights Registry - TID/TAID/TAI-D enforcement, rights clarity & licensing state", Status: "active", Layer: 1, KeyFunctions: []string{"Authorship", "Provenance", "Rights Registry", "TID/TAID/TAI-D enforcement"}},
		{ID: "garvis", Name: "GARVIS", Description: "Sovereign Intelligence & Enforcement - Truth enforcement, drift & risk detection", Status: "active", Layer: 2, KeyFunctions: []string{"Truth enforcement", "Drift detection", "Risk detection", "Halts/pauses authority"}},
		{ID: "flightpath", Name: "FLIGHTPATH COS", Description: "Creative Law & Phase Discipline - SPARK → BUILD → LAUNCH → EXPAND → EVERGREEN → SUNSET", Status: "active", Layer: 3, KeyFunctions: []string{"Phase discipline", "Proof gates", "Phase blocks", "Routes cognition"}},
		{ID: "mose", Name: "MOSE", Description: "Multi-Operator Systems Engine - Operator routing & sequencing, escalation & conflict resolution", Status: "active", Layer: 4, KeyFunctions: []string{"Operator routing", "Sequencing", "Escalation", "Conflict resolution", "UOL application"}},
		{ID: "pigpen", Name: "PIG PEN", Description: "Non-Human Cognition Operators (TAI-D) - Analysis, flags, recommendations (no approval authority)", Status: "active", Layer: 5, KeyFunctions: []string{"Analysis", "Flags", "Recommendations", "Frozen registry"}},
		{ID: "tela", Name: "TELA", Description: "Trusted Efficiency Liaison Assistant - Executes approved actions through adapter-based tooling", Status: "active", Layer: 6, KeyFunctions: []string{"Executes approved actions", "Adapter-based tooling", "No scope expansion"}},
		{ID: "audit", Name: "AUDIT & EVENT LEDGER", Description: "Immutable, Append-Only Truth Record - Records decisions, routing, enforcement, execution", Status: "active", Layer: 7, KeyFunctions: []string{"Immutable records", "Decision logging", "Routing logs", "Enforcement logs", "Execution logs"}},
	}
}

// CanonicalOperators returns the Pig Pen operator registry. Operator IDs are
// the lowercased TAI-D identifiers; the registry itself is frozen.
func CanonicalOperators() []Operator {
	return []Operator{
		{OperatorID: "tai-d-001", TAID: "TAI-D-001", Name: "GARVIS — Core Resolver", Capabilities: "Intent inference, routing, orchestration", Role: "Core Resolver", Authority: "Evaluate only", Status: "LOCKED", Category: "Core Resolution", IsActive: true},
		{OperatorID: "tai-d-021", TAID: "TAI-D-021", Name: "Trey - Monetization & Scale", Capabilities: "Pricing logic, revenue models, deal structure", Role: "Monetization & Scale", Authority: "Recommend / escalate", Status: "LOCKED", Category: "Business", IsActive: true},
		{OperatorID: "tai-d-014", TAID: "TAI-D-014", Name: "Levi - Risk & Exposure Control", Capabilities: "Risk detection, downside modeling, escalation", Role: "Risk & Exposure Control", Authority: "Flag / block / escalate", Status: "LOCKED", Category: "Business", IsActive: true},
		{OperatorID: "tai-d-018", TAID: "TAI-D-018", Name: "Will Stats - Financial Modeling", Capabilities: "Forecasting, margin analysis, scenario modeling", Role: "Financial Modeling", Authority: "Calculate / recommend", Status: "LOCKED", Category: "Business", IsActive: true},
		{OperatorID: "tai-d-009", TAID: "TAI-D-009", Name: "Naomi — Creative Direction Filter", Capabilities: "Creative coherence, tone integrity", Role: "Creative Direction Filter", Authority: "Recommend / flag drift", Status: "LOCKED", Category: "Creative", IsActive: true},
		{OperatorID: "tai-d-010", TAID: "TAI-D-010", Name: "Writers Room - Narrative Synthesis", Capabilities: "Longform narrative consistency, story logic", Role: "Narrative Synthesis", Authority: "Recommend only", Status: "LOCKED", Category: "Creative", IsActive: true},
		{OperatorID: "tai-d-031", TAID: "TAI-D-031", Name: "Visual Drift Detection Engine", Capabilities: "Album, tour, press, merch drift detection", Role: "Visual Drift Detection", Authority: "Flag / regenerate", Status: "LOCKED", Category: "Creative", IsActive: true},
		{OperatorID: "tai-d-040", TAID: "TAI-D-040", Name: "Telauthorium Core — Authorship & Rights", Capabilities: "Ownership, provenance, attribution", Role: "Authorship & Rights", Authority: "Enforce / block", Status: "LOCKED", Category: "Systems", IsActive: true},
		{OperatorID: "tai-d-041", TAID: "TAI-D-041", Name: "Commercial Enforcement Engine", Capabilities: "Revenue events, deal objects, carve-outs", Role: "Commercial Enforcement", Authority: "Enforce / halt", Status: "LOCKED", Category: "Systems", IsActive: true},
		{OperatorID: "tai-d-042", TAID: "TAI-D-042", Name: "Compliance & Legal Guardrail", Capabilities: "IP, licensing, exclusivity, audit flags", Role: "Compliance & Legal", Authority: "Block / escalate", Status: "LOCKED", Category: "Systems", IsActive: true},
		{OperatorID: "tai-d-050", TAID: "TAI-D-050", Name: "Completion Gatekeeper", Capabilities: "Finish-the-work enforcement", Role: "Completion Gatekeeper", Authority: "Block incomplete outputs", Status: "LOCKED", Category: "Quality", IsActive: true},
		{OperatorID: "tai-d-051", TAID: "TAI-D-051", Name: "Confidence Threshold Engine", Capabilities: "Auto-execute vs pause logic", Role: "Confidence Threshold", Authority: "Route / pause", Status: "LOCKED", Category: "Quality", IsActive: true},
		{OperatorID: "tai-d-060", TAID: "TAI-D-060", Name: "Report Surface Generator", Capabilities: "Executive, audit, commercial report generation", Role: "Report Generator", Authority: "Generate only", Status: "LOCKED", Category: "Quality", IsActive: true},
		{OperatorID: "tai-d-070", TAID: "TAI-D-070", Name: "External Data Reconciliation Engine", Capabilities: "Ticketing, merch, DSP reconciliation", Role: "Data Reconciliation", Authority: "Compare / flag", Status: "INACTIVE", Category: "Optional", IsActive: true},
		{OperatorID: "tai-d-080", TAID: "TAI-D-080", Name: "OEM & Licensing Boundary Engine", Capabilities: "External deployments, sandboxing", Role: "OEM Boundary", Authority: "Enforce isolation", Status: "INACTIVE", Category: "Optional", IsActive: true},
		{OperatorID: "tai-d-081", TAID: "TAI-D-081", Name: "Partner Performance Attribution Engine", Capabilities: "Sponsor exposure, fulfillment tracking", Role: "Partner Attribution", Authority: "Measure / report", Status: "INACTIVE", Category: "Optional", IsActive: true},
		{OperatorID: "tai-d-082", TAID: "TAI-D-082", Name: "Market Intelligence Ingestion Engine", Capabilities: "Trend signals, benchmarks, comparative analysis", Role: "Market Intelligence", Authority: "Ingest / summarize", Status: "INACTIVE", Category: "Optional", IsActive: true},
		{OperatorID: "tai-d-083", TAID: "TAI-D-083", Name: "Regulatory / Jurisdictional Rules Engine", Capabilities: "Region-specific compliance", Role: "Regulatory Rules", Authority: "Flag / escalate", Status: "INACTIVE", Category: "Optional", IsActive: true},
	}
}

// CanonicalBrands returns the brand profile table
func CanonicalBrands() []BrandProfile {
	return []BrandProfile{
		{
			BrandID:         "gogarvis-default",
			Name:            "GoGarvis Default",
			Description:     "Default brutal minimalist brand for GoGarvis portal",
			PrimaryColor:    "#FF4500",
			SecondaryColor:  "#1A1A1A",
			FontHeading:     "JetBrains Mono",
			FontBody:        "Manrope",
			StyleGuidelines: "Sharp edges, high contrast, monospace dominance, no decorative elements",
			IsActive:        true,
		},
	}
}
