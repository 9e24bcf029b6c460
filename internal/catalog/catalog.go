// Package catalog is the compiled-in list of capstone assignments. It is
// the zero-dependency sibling of the registry and the drive browser: same
// list-and-display feature, data baked into the binary, PDFs served as
// static assets.
package catalog

import "capstonehub/internal/model"

var assignments = []model.Assignment{
	{
		ID:           "assignment-1",
		Name:         "Cyber Range Evaluation Report",
		Description:  "Evaluates three commercial cyber range platforms (RangeForce, CYBER RANGES, Cogent Cyber Range) against a custom rubric covering real-world simulation, scalability, user experience, content quality, and cost-efficiency.",
		Category:     "Comparative Analysis",
		ModifiedTime: "2025-06-01",
		PDFPath:      "/assignments/assignment-1.pdf",
		Type:         "PDF",
		Size:         "1.3 MB",
		Completed:    true,
	},
	{
		ID:           "assignment-2",
		Name:         "Network Reconnaissance & Vulnerability Assessment",
		Description:  "Hands-on exercises in host discovery, port scanning, and service version enumeration.",
		Category:     "Cybersecurity Operations/Network Security",
		ModifiedTime: "2025-06-15",
		PDFPath:      "/assignments/assignment-2.pdf",
		Type:         "PDF",
		Size:         "2.7 MB",
		Completed:    true,
	},
	{
		ID:           "assignment-3",
		Name:         "SCADA Security: Firewall Rules and Infrastructure Attack",
		Description:  "Defensive and offensive approaches to SCADA system security.",
		Category:     "Industrial Control Systems (ICS) Security/Cybersecurity Operations",
		ModifiedTime: "2025-06-22",
		PDFPath:      "/assignments/assignment-3.pdf",
		Type:         "PDF",
		Size:         "2.7 MB",
		Completed:    true,
	},
	{
		ID:           "assignment-4",
		Name:         "Web Application & OSINT Attack Techniques",
		Description:  "Common adversary attacks and OSINT techniques for reconnaissance and network footprinting.",
		Category:     "Penetration Testing/Offensive Security",
		ModifiedTime: "2025-06-29",
		PDFPath:      "/assignments/assignment-4.pdf",
		Type:         "PDF",
		Size:         "7 MB",
		Completed:    true,
	},
	{
		ID:           "assignment-5",
		Name:         "Advanced Adversarial Tactics: Reconnaissance, Resource Development, and Pivoting",
		Description:  "Web scraping with cewl, directory enumeration with gobuster, and website cloning/credential harvesting with the Social Engineering Toolkit.",
		Category:     "Offensive Security/Red Teaming",
		ModifiedTime: "2025-07-05",
		PDFPath:      "/assignments/assignment-5.pdf",
		Type:         "PDF",
		Size:         "2.2 MB",
		Completed:    true,
	},
	{
		ID:           "assignment-6",
		Name:         "Privilege Escalation via XSS & Defensive Evasion Techniques",
		Description:  "Privilege escalation through cross-site scripting in a web app and adversarial defensive evasion on a Linux host.",
		Category:     "Offensive Security/Red Teaming",
		ModifiedTime: "2025-07-13",
		PDFPath:      "/assignments/assignment-6.pdf",
		Type:         "PDF",
		Size:         "2.2 MB",
		Completed:    true,
	},
	{
		ID:           "assignment-7",
		Name:         "Web Vulnerabilities & Secure/Insecure Protocols",
		Description:  "XSS (reflected, stored, DOM-based), SQL injection, directory traversal, and file inclusion, plus the security implications of Telnet, SSH, and FTP.",
		Category:     "Web App and Network Security",
		ModifiedTime: "2025-07-20",
		PDFPath:      "/assignments/assignment-7.pdf",
		Type:         "PDF",
		Size:         "2.4 MB",
		Completed:    true,
	},
	{
		ID:           "assignment-8",
		Name:         "Network Security Diagnostics and Cryptography",
		Description:  "Firewall rules with iptables, network inspection with ping/nmap/curl, and symmetric and asymmetric algorithms (DES, 3DES, RSA, AES).",
		Category:     "Network Security/Cryptography",
		ModifiedTime: "2025-07-27",
		PDFPath:      "/assignments/assignment-8.pdf",
		Type:         "PDF",
		Size:         "2.4 MB",
		Completed:    true,
	},
	{
		ID:           "assignment-9",
		Name:         "Digital Evidence and Legal Issues",
		Description:  "Overview of the legal and ethical landscape for cybersecurity professionals.",
		Category:     "Legal, Ethical, and Regulatory Compliance",
		ModifiedTime: "2025-08-03",
		PDFPath:      "/assignments/assignment-9.pdf",
		Type:         "PDF",
		Size:         "2.5 MB",
		Completed:    true,
	},
	{
		ID:           "assignment-10",
		Name:         "Indicators of Compromise",
		Description:  "Steps to identify, contain, and remove a threat from a machine.",
		Category:     "Incident Response",
		ModifiedTime: "2025-08-08",
		PDFPath:      "/assignments/assignment-10.pdf",
		Type:         "PDF",
		Size:         "2.4 MB",
		Completed:    true,
	},
	{
		ID:           "assignment-11",
		Name:         "Digital Forensics Analysis",
		Description:  "Digital forensics techniques and tools for incident investigation and evidence collection.",
		Category:     "Digital Forensics",
		ModifiedTime: "2025-01-05T14:35:00Z",
		PDFPath:      "/assignments/assignment-11.pdf",
		Type:         "PDF",
		Size:         "3.7 MB",
		Completed:    false,
	},
	{
		ID:           "assignment-12",
		Name:         "Security Operations Center",
		Description:  "Design and operation of Security Operations Centers for continuous monitoring.",
		Category:     "SOC Operations",
		ModifiedTime: "2025-01-10T09:20:00Z",
		PDFPath:      "/assignments/assignment-12.pdf",
		Type:         "PDF",
		Size:         "2.6 MB",
		Completed:    false,
	},
	{
		ID:           "assignment-13",
		Name:         "Business Continuity Planning",
		Description:  "Business continuity and disaster recovery planning for cybersecurity incidents.",
		Category:     "Business Continuity",
		ModifiedTime: "2025-01-15T16:45:00Z",
		PDFPath:      "/assignments/assignment-13.pdf",
		Type:         "PDF",
		Size:         "3.3 MB",
		Completed:    false,
	},
	{
		ID:           "assignment-14",
		Name:         "Capstone Project Final Report",
		Description:  "Comprehensive final report consolidating all cybersecurity analytics research and findings.",
		Category:     "Final Project",
		ModifiedTime: "2025-01-20T11:00:00Z",
		PDFPath:      "/assignments/assignment-14.pdf",
		Type:         "PDF",
		Size:         "5.2 MB",
		Completed:    false,
	},
}

// List returns every assignment, completed or not, in catalog order. The
// returned slice is a copy; callers may not mutate the catalog.
func List() []model.Assignment {
	out := make([]model.Assignment, len(assignments))
	copy(out, assignments)
	return out
}

// Get returns the assignment with the given id, or nil when it does not
// exist or is not yet completed. Incomplete assignments have no reachable
// detail view.
func Get(id string) *model.Assignment {
	for i := range assignments {
		if assignments[i].ID == id {
			if !assignments[i].Completed {
				return nil
			}
			a := assignments[i]
			return &a
		}
	}
	return nil
}

// Completed returns only the assignments whose detail views are reachable.
func Completed() []model.Assignment {
	out := make([]model.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if a.Completed {
			out = append(out, a)
		}
	}
	return out
}
