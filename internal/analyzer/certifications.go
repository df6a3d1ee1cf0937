package analyzer

import "resumatch-utils/pkg/models"

// DefaultCertifications maps vocabulary skill names to recommended online
// certifications. Keys use the vocabulary's canonical casing; lookups are
// exact. Immutable reference data.
var DefaultCertifications = map[string][]models.Certification{
	// Programming languages
	"Python": {
		{Name: "Python Institute PCEP", Provider: "Python Institute", URL: "https://pythoninstitute.org/certification/pcep-certification-entry-level/"},
		{Name: "Python Institute PCAP", Provider: "Python Institute", URL: "https://pythoninstitute.org/certification/pcap-certification-associate/"},
		{Name: "Microsoft Certified: Azure Developer Associate", Provider: "Microsoft", URL: "https://learn.microsoft.com/en-us/certifications/azure-developer/"},
	},
	"Java": {
		{Name: "Oracle Certified Associate Java Programmer", Provider: "Oracle", URL: "https://education.oracle.com/oracle-certified-associate-java-se-8-programmer/trackp_333"},
		{Name: "Oracle Certified Professional Java Programmer", Provider: "Oracle", URL: "https://education.oracle.com/oracle-certified-professional-java-se-8-programmer/trackp_357"},
	},
	"JavaScript": {
		{Name: "JavaScript Institute Certification", Provider: "W3Schools", URL: "https://www.w3schools.com/cert/cert_javascript.asp"},
		{Name: "Certified JavaScript Developer", Provider: "DevSkiller", URL: "https://devskiller.com/certifications/"},
	},

	// Frameworks and libraries
	"React": {
		{Name: "Meta React Developer Professional Certificate", Provider: "Coursera", URL: "https://www.coursera.org/professional-certificates/meta-front-end-developer"},
		{Name: "React.js Certification", Provider: "W3Schools", URL: "https://www.w3schools.com/cert/cert_react.asp"},
	},
	"Angular": {
		{Name: "Angular Certification", Provider: "Angular.io", URL: "https://angular.io/guide/certification"},
		{Name: "Angular Developer Certification", Provider: "Udemy", URL: "https://www.udemy.com/course/angular-certification/"},
	},
	"Django": {
		{Name: "Django Developer Certification", Provider: "Udemy", URL: "https://www.udemy.com/course/django-python-advanced/"},
		{Name: "Python Django Full Stack Developer Bootcamp", Provider: "Udemy", URL: "https://www.udemy.com/course/python-and-django-full-stack-web-developer-bootcamp/"},
	},

	// Databases
	"MySQL": {
		{Name: "Oracle MySQL Database Administration", Provider: "Oracle", URL: "https://education.oracle.com/mysql-database-administration/pexam_1Z0-888"},
		{Name: "MySQL Developer Certification", Provider: "Oracle", URL: "https://education.oracle.com/mysql-5-developer/pexam_1Z0-882"},
	},
	"MongoDB": {
		{Name: "MongoDB Certified Developer Associate", Provider: "MongoDB", URL: "https://university.mongodb.com/certification/developer/about"},
		{Name: "MongoDB Certified DBA Associate", Provider: "MongoDB", URL: "https://university.mongodb.com/certification/dba/about"},
	},

	// Cloud platforms
	"AWS": {
		{Name: "AWS Certified Cloud Practitioner", Provider: "Amazon", URL: "https://aws.amazon.com/certification/certified-cloud-practitioner/"},
		{Name: "AWS Certified Solutions Architect - Associate", Provider: "Amazon", URL: "https://aws.amazon.com/certification/certified-solutions-architect-associate/"},
		{Name: "AWS Certified Developer - Associate", Provider: "Amazon", URL: "https://aws.amazon.com/certification/certified-developer-associate/"},
	},
	"Azure": {
		{Name: "Microsoft Certified: Azure Fundamentals", Provider: "Microsoft", URL: "https://learn.microsoft.com/en-us/certifications/azure-fundamentals/"},
		{Name: "Microsoft Certified: Azure Administrator Associate", Provider: "Microsoft", URL: "https://learn.microsoft.com/en-us/certifications/azure-administrator/"},
	},
	"Google Cloud": {
		{Name: "Google Cloud Digital Leader", Provider: "Google", URL: "https://cloud.google.com/certification/cloud-digital-leader"},
		{Name: "Google Cloud Associate Engineer", Provider: "Google", URL: "https://cloud.google.com/certification/cloud-engineer"},
	},

	// Tools and platforms
	"Docker": {
		{Name: "Docker Certified Associate", Provider: "Docker", URL: "https://training.mirantis.com/certification/dca-certification-exam/"},
		{Name: "Docker and Kubernetes: The Complete Guide", Provider: "Udemy", URL: "https://www.udemy.com/course/docker-and-kubernetes-the-complete-guide/"},
	},
	"Kubernetes": {
		{Name: "Certified Kubernetes Administrator (CKA)", Provider: "CNCF", URL: "https://www.cncf.io/certification/cka/"},
		{Name: "Certified Kubernetes Application Developer (CKAD)", Provider: "CNCF", URL: "https://www.cncf.io/certification/ckad/"},
	},

	// Data science and AI
	"Machine Learning": {
		{Name: "Machine Learning Specialization", Provider: "Coursera", URL: "https://www.coursera.org/specializations/machine-learning-introduction"},
		{Name: "Professional Certificate in Machine Learning and Artificial Intelligence", Provider: "edX", URL: "https://www.edx.org/professional-certificate/ibm-machine-learning"},
	},
	"Data Science": {
		{Name: "IBM Data Science Professional Certificate", Provider: "Coursera", URL: "https://www.coursera.org/professional-certificates/ibm-data-science"},
		{Name: "Microsoft Certified: Azure Data Scientist Associate", Provider: "Microsoft", URL: "https://learn.microsoft.com/en-us/certifications/azure-data-scientist/"},
	},
	"TensorFlow": {
		{Name: "TensorFlow Developer Certificate", Provider: "TensorFlow", URL: "https://www.tensorflow.org/certificate"},
		{Name: "DeepLearning.AI TensorFlow Developer Professional Certificate", Provider: "Coursera", URL: "https://www.coursera.org/professional-certificates/tensorflow-in-practice"},
	},

	// General
	"Project Management": {
		{Name: "Project Management Professional (PMP)", Provider: "PMI", URL: "https://www.pmi.org/certifications/project-management-pmp"},
		{Name: "Certified Associate in Project Management (CAPM)", Provider: "PMI", URL: "https://www.pmi.org/certifications/certified-associate-capm"},
	},
	"Agile": {
		{Name: "Professional Scrum Master I (PSM I)", Provider: "Scrum.org", URL: "https://www.scrum.org/professional-scrum-certifications/professional-scrum-master-i-assessment"},
		{Name: "PMI Agile Certified Practitioner (PMI-ACP)", Provider: "PMI", URL: "https://www.pmi.org/certifications/agile-acp"},
	},
	"Cybersecurity": {
		{Name: "CompTIA Security+", Provider: "CompTIA", URL: "https://www.comptia.org/certifications/security"},
		{Name: "Certified Information Systems Security Professional (CISSP)", Provider: "ISC2", URL: "https://www.isc2.org/Certifications/CISSP"},
	},
}
