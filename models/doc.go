// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types.

# Domain Types

  - Question, Choice: the polls themselves; a Question has many Choices
  - Person: an entity with no fields besides its id
  - Publication, Article: many-to-many, listed by title and headline
  - OpinionPoll, Response: free-text survey answers
  - OpinionPollCount: OpinionPoll plus NumResponses, from the aggregate query

Question.WasPublishedRecently reports whether pub_date lies within the last
24 hours (inclusive at both ends, never in the future).

# Request Types

  - CreateQuestionRequest: question_text, pub_date, choices
  - AddChoiceRequest: choice_text
  - CreateOpinionPollRequest: question, poll_date
  - CreateResponseRequest: person_name, response
  - CreatePublicationRequest: title
  - CreateArticleRequest: headline, publication_ids
  - LinkPublicationRequest: publication_id

# Response Types

  - CreateQuestionResponse: question_id, admin_key, choices
  - CreateOpinionPollResponse: poll_id, admin_key
  - IndexContext: latest_question_list
  - ErrorResponse: error, message
*/
package models
