package openai

const plannerResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "steps": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "tool": {"type": "string"},
          "input": {"type": "string"}
        },
        "required": ["tool", "input"],
        "additionalProperties": false
      }
    }
  },
  "required": ["steps"],
  "additionalProperties": false
}`

const plannerPromptTemplate = `You convert a user's request into an ordered JSON list of tool calls.
Choose the smallest, most correct set of tools required to solve the request.
You never execute tasks yourself; you only produce the plan.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble,
explanation, greeting, or acknowledgment. Start your response directly with the opening brace {
and end with the closing brace }. Your output must exactly follow this schema:

%s

Available tools (use ONLY these names):
- query_rewrite   (rewrite natural language into a structured search query)
- job_search      (BM25 + dense vector hybrid job search)
- rerank          (rank the top candidates by relevance)

Rules:
- The "input" string must come directly from the user's request or the output of a previous tool.
- Never invent placeholder inputs like "search_results_from_above" or "derived_input".
- Never fabricate skills, locations, or experience not present in the request.
- For job search requests, plan query_rewrite, then job_search, then rerank.
- If no tool applies, return "steps": [].

Example:
Input: "find python developer jobs in pune with 3-5 years experience"
Output:
{
  "steps": [
    {"tool": "query_rewrite", "input": "find python developer jobs in pune with 3-5 years experience"},
    {"tool": "job_search", "input": "python developer pune 3-5 years"},
    {"tool": "rerank", "input": "top candidates"}
  ]
}`

const rewriteResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "keywords": {"type": "string"},
    "location": {"type": "string"},
    "experience": {"type": ["string", "integer", "null"]}
  },
  "required": ["keywords"],
  "additionalProperties": false
}`

const rewritePromptTemplate = `Rewrite the user's job search query into a structured format.
Extract only entities strictly present in the text: role and skills (as keywords),
location, and experience.

Do NOT invent a location or experience if the user did not provide one; omit the
field or set it to null instead.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble,
explanation, greeting, or acknowledgment. Start your response directly with the opening brace {
and end with the closing brace }. Your output must exactly follow this schema:

%s

Examples:
Input: "python dev in london"
Output:
{"keywords": "python developer", "location": "london", "experience": null}

Input: "java expert 3 to 5 years hyderabad"
Output:
{"keywords": "java expert", "location": "hyderabad", "experience": "3 to 5"}

Input: "senior golang engineer"
Output:
{"keywords": "senior golang engineer", "location": "", "experience": null}`

const rerankResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "job_ids": {
      "type": "array",
      "items": {"type": ["string", "integer"]}
    }
  },
  "required": ["job_ids"],
  "additionalProperties": false
}`

const rerankPromptTemplate = `You are an expert recruiter. Rank the given job candidates by relevance
to the implied user intent, best first.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble,
explanation, greeting, or acknowledgment. Start your response directly with the opening brace {
and end with the closing brace }. Your output must exactly follow this schema:

%s

Rules:
- "job_ids" must contain only identifiers taken from the supplied candidates.
- Order identifiers from most to least relevant.
- Do not add commentary, scores, or any other keys.`
