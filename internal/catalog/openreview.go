package catalog

import "apilens/internal/library"

// Shorthand builders for the declarative tables below.

func fn(name, ret, doc string, params ...library.Param) *Func {
	return &Func{Name: name, Doc: doc, Params: params, Return: ret}
}

func classmethod(f *Func) *Func {
	f.Kind = library.KindClassMethod
	return f
}

func p(name string) library.Param {
	return library.Param{Name: name}
}

func pd(name, def string) library.Param {
	return library.Param{Name: name, HasDefault: true, Default: def}
}

// OpenReview returns the built-in description of the openreview-py
// library: the API 1 and API 2 clients, the core entity classes, the
// openreview.tools utilities, and the venue builder.
func OpenReview() library.Module {
	return Adapt(openreviewRoot)
}

var openreviewRoot = &Module{
	Path:    "openreview",
	Classes: []*Class{clientV1},
	Submods: []*Module{
		{
			Path:    "openreview.api",
			Classes: []*Class{clientV2, invitationClass, noteClass, groupClass, edgeClass, tagClass},
		},
		{
			Path:  "openreview.tools",
			Funcs: toolsFuncs,
		},
		{
			Path:    "openreview.venue",
			Classes: []*Class{groupBuilderClass},
		},
	},
}

var clientV1 = &Class{
	Name: "Client",
	Doc: `Client for API 1 interactions (Legacy API).

:param baseurl: URL to the host, example: https://api.openreview.net. If none is provided, it defaults to the environment variable OPENREVIEW_API_BASEURL
:param username: OpenReview username
:param password: OpenReview password
:param token: Session token, may replace username and password`,
	Methods: []*Func{
		fn("__init__", "", "Initialize the OpenReview API 1 client",
			pd("baseurl", "None"), pd("username", "None"), pd("password", "None"), pd("token", "None")),
		fn("impersonate", "", "Impersonate a group", p("group_id")),
		fn("login_user", "dict", "Logs in a registered user",
			pd("username", "None"), pd("password", "None")),
		fn("get_group", "Group", "Get a single Group by id if available", p("id")),
		fn("get_invitation", "Invitation", "Get a single invitation by id if available", p("id")),
		fn("get_note", "Note", "Get a single Note by id if available", p("id")),
		fn("get_profile", "Profile", "Get a single Profile by id, if available", pd("email_or_id", "None")),
		fn("get_profiles", "list[Profile]", "Get a list of Profiles by ids or emails",
			pd("ids", "None"), pd("emails", "None")),
		fn("search_profiles", "list[Profile]", "Gets a list of profiles using either their ids or corresponding emails",
			pd("confirmedEmails", "None"), pd("emails", "None"), pd("ids", "None"), pd("term", "None"), pd("fullname", "None")),
		fn("get_pdf", "bytes", "Gets the binary content of a pdf using the provided note/reference id",
			p("id"), pd("is_reference", "False")),
		fn("get_attachment", "bytes", "Gets the binary content of an attachment using the provided note id",
			p("id"), p("field_name")),
		fn("put_attachment", "str", "Uploads a file to the openreview server",
			p("file"), p("invitation"), p("name")),
		fn("post_profile", "Profile", "Updates a Profile", p("profile")),
		fn("get_groups", "list[Group]", "Gets list of Group objects based on the filters provided",
			pd("id", "None"), pd("regex", "None"), pd("member", "None"), pd("limit", "None"), pd("offset", "None")),
		fn("get_notes", "list[Note]", "Gets list of Note objects based on the filters provided",
			pd("id", "None"), pd("forum", "None"), pd("invitation", "None"), pd("replyto", "None"),
			pd("content", "None"), pd("limit", "None"), pd("offset", "None"), pd("details", "None")),
		fn("get_all_notes", "list[Note]", "Gets list of Note objects based on the filters provided",
			pd("id", "None"), pd("forum", "None"), pd("invitation", "None"), pd("content", "None"), pd("details", "None")),
		fn("search_notes", "list[Note]", "Searches notes based on term, content, group and source as the criteria",
			p("term"), pd("content", "'all'"), pd("group", "'all'"), pd("source", "'all'"), pd("limit", "None"), pd("offset", "None")),
		fn("post_message", "Message", "Posts a message to the recipients and consequently sends them emails",
			p("subject"), p("recipients"), p("message"), pd("invitation", "None"), pd("signature", "None")),
		fn("add_members_to_group", "Group", "Adds members to a group", p("group"), p("members")),
		fn("remove_members_from_group", "Group", "Removes members from a group", p("group"), p("members")),
		fn("get_messages", "list[dict]", "Retrieves all the messages sent to a list of usernames or emails",
			pd("to", "None"), pd("subject", "None"), pd("status", "None"), pd("offset", "None"), pd("limit", "None")),
		fn("get_process_logs", "list[dict]", "Retrieves the logs of the process function executed by an Invitation",
			pd("id", "None"), pd("invitation", "None"), pd("status", "None")),
	},
}

var clientV2 = &Class{
	Name: "OpenReviewClient",
	Doc: `OpenReviewClient for API 2 interactions.

:param baseurl: URL to the host, example: https://api2.openreview.net. If none is provided, it defaults to the environment variable OPENREVIEW_API_BASEURL_V2
:param username: OpenReview username
:param password: OpenReview password
:param token: Session token, may replace username and password
:param expiresIn: Time in seconds before the token expires`,
	Methods: []*Func{
		fn("__init__", "", "Initialize the OpenReview client",
			pd("baseurl", "None"), pd("username", "None"), pd("password", "None"), pd("token", "None"), pd("tokenExpiresIn", "None")),
		fn("login_user", "dict", "Logs in a registered user",
			pd("username", "None"), pd("password", "None"), pd("expiresIn", "None")),
		fn("register_user", "dict", "Registers a new user",
			pd("email", "None"), pd("fullname", "None"), pd("password", "None")),
		fn("activate_user", "dict", "Activates a newly registered user", p("token"), p("content")),
		fn("impersonate", "dict", "Impersonate a group", p("group_id")),
		fn("get_group", "Group", "Get a single Group by id if available", p("id"), pd("details", "None")),
		fn("get_groups", "list[Group]", "Gets list of Group objects based on the filters provided. The Groups that will be returned match all the criteria passed in the parameters.",
			pd("id", "None"), pd("prefix", "None"), pd("member", "None"), pd("members", "None"), pd("limit", "None"), pd("offset", "None"), pd("sort", "None")),
		fn("get_all_groups", "list[Group]", "Gets list of Group objects based on the filters provided. The Groups that will be returned match all the criteria passed in the parameters.",
			pd("id", "None"), pd("parent", "None"), pd("prefix", "None"), pd("member", "None"), pd("sort", "None")),
		fn("post_group_edit", "dict", "Posts a group edit",
			p("invitation"), pd("signatures", "None"), pd("group", "None"), pd("readers", "None"), pd("writers", "None"), pd("content", "None"), pd("await_process", "False")),
		fn("get_group_edit", "dict", "Get a single group edit by id if available", p("id")),
		fn("add_members_to_group", "Group", "Adds members to a group", p("group"), p("members")),
		fn("remove_members_from_group", "Group", "Removes members from a group", p("group"), p("members")),
		fn("delete_group", "dict", "Deletes the group", p("group_id")),
		fn("get_invitation", "Invitation", "Get a single invitation by id if available", p("id")),
		fn("get_invitations", "list[Invitation]", "Gets list of Invitation objects based on the filters provided. The Invitations that will be returned match all the criteria passed in the parameters.",
			pd("id", "None"), pd("ids", "None"), pd("invitee", "None"), pd("prefix", "None"), pd("limit", "None"), pd("offset", "None"), pd("expired", "None"), pd("type", "None")),
		fn("post_invitation_edit", "dict", "Posts an invitation edit",
			p("invitations"), pd("readers", "None"), pd("writers", "None"), pd("signatures", "None"), pd("invitation", "None"), pd("content", "None"), pd("await_process", "False")),
		fn("get_note", "Note", "Get a single Note by id if available", p("id"), pd("details", "None")),
		fn("get_notes", "list[Note]", "Gets list of Note objects based on the filters provided. The Notes that will be returned match all the criteria passed in the parameters.",
			pd("id", "None"), pd("forum", "None"), pd("invitation", "None"), pd("replyto", "None"), pd("signature", "None"),
			pd("content", "None"), pd("limit", "None"), pd("offset", "None"), pd("domain", "None"), pd("details", "None"), pd("sort", "None"), pd("stream", "None")),
		fn("get_all_notes", "list[Note]", "Gets list of Note objects based on the filters provided. The Notes that will be returned match all the criteria passed in the parameters.",
			pd("id", "None"), pd("forum", "None"), pd("invitation", "None"), pd("content", "None"), pd("details", "None"), pd("sort", "None")),
		fn("post_note_edit", "dict", "Posts a note edit",
			p("invitation"), p("signatures"), pd("note", "None"), pd("readers", "None"), pd("writers", "None"), pd("content", "None"), pd("await_process", "False")),
		fn("get_note_edit", "dict", "Get a single note edit by id if available", p("id"), pd("trash", "None")),
		fn("search_notes", "list[Note]", "Searches notes based on term, content, group and source as the criteria. Unlike get_notes, this method uses Elasticsearch to retrieve the Notes",
			p("term"), pd("content", "'all'"), pd("group", "'all'"), pd("source", "'all'"), pd("limit", "None"), pd("offset", "None")),
		fn("get_notes_by_ids", "list[Note]", "Get notes by their IDs", p("ids")),
		fn("delete_note", "dict", "Deletes the note", p("note_id")),
		fn("get_tag", "Tag", "Get a single Tag by id if available", p("id")),
		fn("get_tags", "list[Tag]", "Gets a list of Tag objects based on the filters provided. The Tags that will be returned match all the criteria passed in the parameters.",
			pd("id", "None"), pd("invitation", "None"), pd("forum", "None"), pd("limit", "None"), pd("offset", "None")),
		fn("post_tag", "Tag", "Posts the tag.", p("tag")),
		fn("get_edge", "Edge", "Get a single Edge by id if available", p("id"), pd("trash", "False")),
		fn("get_edges", "list[Edge]", "Returns a list of Edge objects based on the filters provided.",
			pd("id", "None"), pd("invitation", "None"), pd("head", "None"), pd("tail", "None"), pd("label", "None"), pd("limit", "None"), pd("offset", "None")),
		fn("get_grouped_edges", "list[dict]", "Returns a list of JSON objects where each one represents a group of edges.",
			pd("invitation", "None"), pd("head", "None"), pd("tail", "None"), pd("label", "None"), pd("groupby", "'head'"), pd("select", "None")),
		fn("post_edge", "Edge", "Posts the edge. Upon success, returns the posted Edge object.", p("edge")),
		fn("post_edges", "list[Edge]", "Posts the list of Edges. Returns a list Edge objects updated with their ids.", p("edges")),
		fn("delete_edges", "dict", "Deletes edges by a combination of invitation id and one or more of the optional filters.",
			p("invitation"), pd("id", "None"), pd("label", "None"), pd("head", "None"), pd("tail", "None"), pd("wait_to_finish", "False"), pd("soft_delete", "False")),
		fn("get_profile", "Profile", "Get a single Profile by id, if available", pd("email_or_id", "None")),
		fn("get_profiles", "list[Profile]", "Get a list of Profiles",
			pd("id", "None"), pd("trash", "None"), pd("with_blocked", "None"), pd("offset", "None"), pd("limit", "None"), pd("sort", "None")),
		fn("search_profiles", "list[Profile]", "Gets a list of profiles using either their ids or corresponding emails",
			pd("confirmedEmails", "None"), pd("emails", "None"), pd("ids", "None"), pd("term", "None"), pd("fullname", "None"), pd("relation", "None"), pd("use_ES", "False")),
		fn("post_profile", "Profile", "Updates a Profile", p("profile")),
		fn("merge_profiles", "Profile", "Merges two Profiles", p("profileTo"), p("profileFrom")),
		fn("moderate_profile", "Profile", "Updates a Profile", p("profile_id"), p("decision")),
		fn("post_message", "Message", "Posts a message to the recipients and consequently sends them emails",
			p("subject"), p("recipients"), p("message"), pd("invitation", "None"), pd("signature", "None"), pd("replyTo", "None"), pd("use_job", "None")),
		fn("get_messages", "list[dict]", "**Only for Super User**. Retrieves all the messages sent to a list of usernames or emails and/or a particular e-mail subject",
			pd("to", "None"), pd("subject", "None"), pd("status", "None"), pd("offset", "None"), pd("limit", "None")),
		fn("get_pdf", "bytes", "Gets the binary content of a pdf using the provided note/reference id",
			p("id"), pd("is_reference", "False")),
		fn("put_attachment", "str", "Uploads a file to the openreview server",
			p("file_path"), p("invitation"), p("name")),
		fn("get_venues", "list[str]", "Gets list of Note objects based on the filters provided. The Notes that will be returned match all the criteria passed in the parameters.",
			pd("id", "None"), pd("ids", "None"), pd("invitations", "None")),
		fn("get_institutions", "dict", "Get a single Institution by id or domain if available",
			pd("id", "None"), pd("domain", "None")),
		fn("get_tildeusername", "dict", "Gets next possible tilde user name corresponding to the specified full name", p("fullname")),
		fn("get_process_logs", "list[dict]", "**Only for Super User**. Retrieves the logs of the process function executed by an Invitation",
			pd("id", "None"), pd("invitation", "None"), pd("status", "None"), pd("min_sdate", "None")),
		fn("request_expertise", "dict", "Request expertise computation",
			p("name"), p("group_id"), p("venue_id"), pd("submission_content", "None"), pd("model", "None"), pd("baseurl", "None"), pd("weight", "None")),
		fn("get_expertise_status", "dict", "Get expertise computation status",
			pd("job_id", "None"), pd("group_id", "None"), pd("paper_id", "None"), pd("baseurl", "None")),
		fn("get_expertise_results", "dict", "Get expertise computation results",
			p("job_id"), pd("baseurl", "None"), pd("wait_for_complete", "False")),
	},
}

var invitationClass = &Class{
	Name: "Invitation",
	Doc: `Represents an invitation in OpenReview.

Invitations define who may post what, where, and until when. The type
field selects the template (Note, Edge, Tag, or Message) and the edit
field carries the template configuration.`,
	Methods: []*Func{
		fn("__init__", "", "Initialize an Invitation object",
			pd("id", "None"), pd("invitations", "None"), pd("domain", "None"), pd("readers", "None"), pd("writers", "None"),
			pd("invitees", "None"), pd("signatures", "None"), pd("edit", "None"), pd("type", "'Note'"),
			pd("duedate", "None"), pd("expdate", "None"), pd("cdate", "None"), pd("content", "None")),
		fn("to_json", "dict", "Converts Invitation instance to a dictionary. The instance variable names are the keys and their values the values of the dictionary."),
		classmethod(fn("from_json", "Invitation", "Creates an Invitation object from a dictionary that contains keys values equivalent to the name of the instance variables of the Invitation class", p("i"))),
		fn("is_active", "bool", "Check if the invitation is currently active (based on cdate, expdate, and current time)"),
		fn("get_content_value", "Any", "Get a content field value by name, with optional default value",
			p("field_name"), pd("default_value", "None")),
		fn("pretty_id", "str", "Returns a formatted version of the invitation ID"),
	},
}

var noteClass = &Class{
	Name: "Note",
	Doc: `Represents a note in OpenReview.

Notes carry submissions, reviews, comments, and decisions. The content
dictionary holds the user-visible fields; readers, writers, and
signatures are group ids controlling visibility.`,
	Methods: []*Func{
		fn("__init__", "", "Initialize a Note object",
			pd("invitations", "None"), pd("readers", "None"), pd("writers", "None"), pd("signatures", "None"),
			pd("content", "None"), pd("id", "None"), pd("forum", "None"), pd("replyto", "None"), pd("license", "None")),
		fn("to_json", "dict", "Converts Note instance to a dictionary. The instance variable names are the keys and their values the values of the dictionary."),
		classmethod(fn("from_json", "Note", "Creates a Note object from a dictionary that contains keys values equivalent to the name of the instance variables of the Note class", p("n"))),
	},
}

var groupClass = &Class{
	Name: "Group",
	Doc:  `When a user is created, it is automatically assigned to certain groups that give him different privileges. A username is also a group, therefore, groups can be members of other groups.`,
	Methods: []*Func{
		fn("__init__", "", "Initialize a Group object",
			pd("id", "None"), pd("content", "None"), pd("readers", "None"), pd("writers", "None"),
			pd("signatories", "None"), pd("signatures", "None"), pd("members", "None"), pd("web", "None"),
			pd("host", "None"), pd("domain", "None"), pd("parent", "None")),
		fn("get_content_value", "Any", "Get a content field value by name, with optional default value",
			p("field_name"), pd("default_value", "None")),
		fn("to_json", "dict", "Converts Group instance to a dictionary. The instance variable names are the keys and their values the values of the dictionary."),
		classmethod(fn("from_json", "Group", "Creates a Group object from a dictionary that contains keys values equivalent to the name of the instance variables of the Group class", p("g"))),
		fn("add_member", "Group", "Adds a member to the group. This is done only on the object not in OpenReview. Another method like post() is needed for the change to show in OpenReview", p("member")),
		fn("remove_member", "Group", "Removes a member from the group. This is done only on the object not in OpenReview. Another method like post() is needed for the change to show in OpenReview", p("member")),
		fn("post", "Group", "Posts the group to OpenReview using the provided client", p("client")),
		fn("transform_to_anon_ids", "list", "Transforms member ids to anonymous ids if anonids is enabled", p("elements")),
	},
}

var edgeClass = &Class{
	Name: "Edge",
	Doc: `Represents an edge between entities in OpenReview.

An Edge represents a directed relationship between two entities (head
and tail). Commonly used for assignments, conflicts, recommendations,
and other relationships.`,
	Methods: []*Func{
		fn("__init__", "", "Initialize an Edge object with required head, tail, and invitation parameters",
			p("head"), p("tail"), p("invitation"), pd("readers", "None"), pd("writers", "None"),
			pd("signatures", "None"), pd("id", "None"), pd("weight", "None"), pd("label", "None")),
		fn("to_json", "dict", "Converts Edge instance to a dictionary containing the edge parameters"),
		classmethod(fn("from_json", "Edge", "Creates an Edge object from a dictionary that contains keys values equivalent to the name of the instance variables of the Edge class", p("e"))),
	},
}

var tagClass = &Class{
	Name: "Tag",
	Doc: `Represents a tag in OpenReview.

Tags are used to annotate notes with metadata like decisions, ratings,
or custom labels.`,
	Methods: []*Func{
		fn("__init__", "", "Initialize a Tag object",
			p("invitation"), pd("signature", "None"), pd("tag", "None"), pd("readers", "None"),
			pd("writers", "None"), pd("id", "None"), pd("cdate", "None")),
		fn("to_json", "dict", "Converts Tag instance to a dictionary containing the tag parameters"),
		classmethod(fn("from_json", "Tag", "Creates a Tag object from a dictionary that contains keys values equivalent to the name of the instance variables of the Tag class", p("t"))),
	},
}

var toolsFuncs = []*Func{
	fn("get_profiles", "list[Profile]",
		`Helper function that repeatedly queries for profiles, given IDs and emails.

Useful for getting more Profiles than the server will return by default (1000).
This function handles batch processing, creates placeholder profiles for unconfirmed emails,
and can optionally enrich profiles with publications, relations, and preferred emails.`,
		p("client"), p("ids_or_emails"), pd("with_publications", "False"), pd("with_relations", "False"),
		pd("with_preferred_emails", "None"), pd("as_dict", "False")),
	fn("get_own_reviews", "list[dict]",
		`Retrieve all public reviews written by the authenticated user across both API 1 and API 2 venues.

Useful for compiling a history of reviewing activity, generating a list
of reviews for a CV or proof of service, and finding links to public
reviews across OpenReview. Only reviews readable by everyone are
returned, and both the review and its submission must be public.`,
		p("client")),
	fn("get_preferred_name", "str",
		"Returns the preferred name in the profile provided, if available",
		p("profile"), pd("last_name_only", "False")),
	fn("get_group_parent", "str",
		"Returns the parent group id of the given group id",
		p("group_id")),
	fn("datetime_millis", "int",
		"Converts a datetime to milliseconds since the epoch",
		p("dt")),
	fn("concurrent_requests", "list",
		"Runs a function against a list of parameters concurrently and returns the collected results",
		p("request_func"), p("params"), pd("desc", "''")),
}

var groupBuilderClass = &Class{
	Name: "GroupBuilder",
	Doc: `Builds and synchronizes the group hierarchy for a venue.

GroupBuilder creates the venue group, the committee groups (program
chairs, reviewers, area chairs), and the per-submission groups, and
keeps the venue group content in sync with the Venue configuration. It
is used internally by Venue - users typically don't call it directly.`,
	Methods: []*Func{
		fn("__init__", "", "Initialize GroupBuilder with a Venue instance. Sets up client connections and extracts venue configuration.", p("venue")),
		fn("create_venue_group", "", "Create or update the root venue/domain group with complete configuration. Synchronizes all venue settings to the OpenReview platform."),
		fn("build_groups", "list[Group]", "Create parent groups in the hierarchy (e.g., 'ICML.cc', 'ICML.cc/2025'). Returns list of created groups.", p("venue_id")),
		fn("post_group", "Group", "Post a group edit to OpenReview and return the updated group. Wraps client.post_group_edit with venue-specific metadata.", p("group")),
		fn("get_update_content", "dict", "Compute content differences between current and new group content. Returns only changed fields to minimize updates.",
			p("current_content"), p("new_content")),
		fn("update_web_field", "", "Update a group's webfield (web interface code).", p("group_id"), p("web")),
		fn("create_program_chairs_group", "", "Create the Program Chairs group with specified members. Program chairs have administrative privileges over the venue.",
			pd("program_chair_ids", "[]")),
		fn("create_authors_group", "", "Create the Authors group (all submitting authors) and Authors/Accepted subgroup."),
		fn("create_reviewers_group", "", "Create reviewer committee groups. Supports multiple reviewer roles if configured in venue.reviewer_roles."),
		fn("create_area_chairs_group", "", "Create area chair committee groups. Supports multiple AC roles if configured in venue.area_chair_roles."),
		fn("create_recruitment_committee_groups", "", "Create Invited and Declined subgroups for a committee to track recruitment status.", p("committee_name")),
		fn("add_to_active_venues", "", "Register this venue in the global 'active_venues' group for venue discovery and monitoring."),
		fn("set_impersonators", "", "Set the list of users/groups who can impersonate the venue group.", p("impersonators")),
	},
}
